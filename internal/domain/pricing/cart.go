package pricing

import "paintmarket/internal/domain/entities"

// RecomputeTotals returns c with its aggregate amounts set to the sum of the
// item pricing. It must run after every change to c.Items.
func RecomputeTotals(c entities.Cart) entities.Cart {
	var total, discount, final float64
	for _, it := range c.Items {
		total += it.Pricing.OriginalAmount
		discount += it.Pricing.TotalDiscount
		final += it.Pricing.FinalAmount
	}
	c.TotalAmount = Round2(total)
	c.TotalDiscount = Round2(discount)
	c.FinalAmount = Round2(final)
	return c
}
