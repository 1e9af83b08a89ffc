package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathTimeline    = "/timeline"
	PathDiscounts   = "/discounts"
	PathCart        = "/cart"
	PathOrders      = "/orders"
	PathEstimate    = "/estimate"
	PathBudget      = "/budget"
	PathContractors = "/contractors"
)

func addMarketplaceRoutes(rg *gin.RouterGroup, h Handlers, requireAuth gin.HandlerFunc) {
	timeline := rg.Group(PathTimeline, requireAuth)
	{
		timeline.POST("/calculate", h.Timeline.Calculate)
		timeline.POST("/save", h.Timeline.Save)
		timeline.GET("/my-estimates", h.Timeline.ListMine)
		timeline.GET("/:id", h.Timeline.Get)
		timeline.PUT("/:id/status", h.Timeline.UpdateStatus)
		timeline.DELETE("/:id", h.Timeline.Delete)
	}

	discounts := rg.Group(PathDiscounts)
	{
		discounts.GET("/active", h.Discount.ListActive)
		discounts.POST("/validate", requireAuth, h.Discount.Validate)
		discounts.POST("/create", requireAuth, h.Discount.Create)
		discounts.GET("/analytics", requireAuth, h.Discount.Analytics)
		discounts.PUT("/:id", requireAuth, h.Discount.Update)
		discounts.DELETE("/:id", requireAuth, h.Discount.Delete)
	}

	cart := rg.Group(PathCart, requireAuth)
	{
		cart.GET("", h.Cart.Get)
		cart.POST("/add", h.Cart.Add)
		cart.DELETE("/remove/:itemId", h.Cart.Remove)
		cart.DELETE("/clear", h.Cart.Clear)
	}

	orders := rg.Group(PathOrders, requireAuth)
	{
		orders.POST("/create", h.Order.Create)
		orders.POST("/payment/process", h.Order.ProcessPayment)
		orders.GET("/my-orders", h.Order.ListMine)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/cancel", h.Order.Cancel)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
	}

	rg.POST(PathEstimate, h.Budget.EstimatePaint)

	budget := rg.Group(PathBudget, requireAuth)
	{
		budget.POST("", h.Budget.Create)
		budget.GET("/:userId", h.Budget.ListByUser)
	}

	contractors := rg.Group(PathContractors)
	{
		contractors.GET("", h.Contractor.List)
		contractors.PUT("/me", requireAuth, h.Contractor.UpsertMine)
		contractors.GET("/:id", h.Contractor.Get)
	}
}
