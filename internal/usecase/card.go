package usecase

import (
	"errors"
	"strings"
	"time"

	"paintmarket/internal/domain/entities"
)

var (
	ErrInvalidCardNumber = errors.New("card number must have 16 digits")
	ErrInvalidCardCVV    = errors.New("cvv must have 3 digits")
	ErrInvalidCardExpiry = errors.New("card is expired or expiry is invalid")
)

// CardInput is the card a client pays with. Only its last four digits and
// brand are ever stored. Token is the provider card token produced by the
// client-side tokenizer; the simulator ignores it.
type CardInput struct {
	Number      string
	HolderName  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
	Token       string
}

// validateCard applies the shape checks of the payment simulator: no
// checksum and no authorization.
func validateCard(card CardInput, now time.Time) error {
	number := normalizeCardNumber(card.Number)
	if len(number) != 16 || !allDigits(number) {
		return ErrInvalidCardNumber
	}
	cvv := strings.TrimSpace(card.CVV)
	if len(cvv) != 3 || !allDigits(cvv) {
		return ErrInvalidCardCVV
	}
	if card.ExpiryMonth < 1 || card.ExpiryMonth > 12 {
		return ErrInvalidCardExpiry
	}
	if expiryYear(card.ExpiryYear) < now.Year() {
		return ErrInvalidCardExpiry
	}
	return nil
}

// redactCard keeps what may be stored about a validated card.
func redactCard(card CardInput) entities.CardDetails {
	number := normalizeCardNumber(card.Number)
	return entities.CardDetails{Last4: number[len(number)-4:], Brand: cardBrand(number)}
}

func cardBrand(number string) string {
	if number == "" {
		return "unknown"
	}
	switch number[0] {
	case '4':
		return "visa"
	case '5':
		return "mastercard"
	case '3':
		return "amex"
	case '6':
		return "discover"
	}
	return "unknown"
}

// expiryYear reads two-digit years as 20YY.
func expiryYear(y int) int {
	if y >= 0 && y < 100 {
		return 2000 + y
	}
	return y
}

func normalizeCardNumber(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(s))
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
