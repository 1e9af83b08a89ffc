package request

type AddToCartRequest struct {
	EstimateID string `json:"estimateId" binding:"required"`
}
