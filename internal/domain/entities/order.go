package entities

import "time"

// OrderStatus is the fulfillment lifecycle of an order.
//
//	pending -> confirmed -> in_progress -> completed
//	cancelled is reachable from every non-terminal status.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusConfirmed
	case OrderStatusConfirmed:
		return next == OrderStatusInProgress
	case OrderStatusInProgress:
		return next == OrderStatusCompleted
	}
	return false
}

type OrderItem struct {
	EstimateID     string          `json:"estimateId"`
	ContractorID   string          `json:"contractorId"`
	ProjectDetails ProjectDetails  `json:"projectDetails"`
	Pricing        Pricing         `json:"pricing"`
	Timeline       TimelineSummary `json:"timeline"`
}

// Order is an immutable snapshot of a cart plus its payment state.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (user_id-index): user_id
type Order struct {
	ID                 string      `json:"id"`
	OrderNumber        string      `json:"orderNumber"`
	UserID             string      `json:"userId"`
	Items              []OrderItem `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	TotalDiscount      float64     `json:"totalDiscount"`
	Tax                float64     `json:"tax"`
	Total              float64     `json:"total"`
	Payment            Payment     `json:"payment"`
	Status             OrderStatus `json:"status"`
	Notes              string      `json:"notes,omitempty"`
	CancellationReason string      `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// HasContractor reports whether contractorID fulfils any item of the order.
func (o Order) HasContractor(contractorID string) bool {
	for _, it := range o.Items {
		if it.ContractorID == contractorID {
			return true
		}
	}
	return false
}
