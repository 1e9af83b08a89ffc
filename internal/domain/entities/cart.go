package entities

import "time"

type TimelineSummary struct {
	TotalHours     float64   `json:"totalHours"`
	WorkingDays    int       `json:"workingDays"`
	TotalDays      int       `json:"totalDays"`
	CompletionDate time.Time `json:"completionDate"`
}

// CartItem snapshots one estimate queued for checkout.
type CartItem struct {
	ID             string          `json:"id"`
	EstimateID     string          `json:"estimateId"`
	ContractorID   string          `json:"contractorId"`
	ProjectDetails ProjectDetails  `json:"projectDetails"`
	Pricing        Pricing         `json:"pricing"`
	Timeline       TimelineSummary `json:"timeline"`
	AddedAt        time.Time       `json:"addedAt"`
}

// Cart is the single cart a user owns.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// Version guards concurrent writers (optimistic locking).
type Cart struct {
	UserID        string     `json:"userId"`
	Items         []CartItem `json:"items"`
	TotalAmount   float64    `json:"totalAmount"`
	TotalDiscount float64    `json:"totalDiscount"`
	FinalAmount   float64    `json:"finalAmount"`
	Version       int64      `json:"-"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// HasEstimate reports whether the estimate is already in the cart.
func (c Cart) HasEstimate(estimateID string) bool {
	for _, it := range c.Items {
		if it.EstimateID == estimateID {
			return true
		}
	}
	return false
}
