package handlers

import (
	"errors"
	"net/http"

	request "paintmarket/internal/adapter/http/dto/request"
	response "paintmarket/internal/adapter/http/dto/response"
	"paintmarket/internal/domain/entities"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
)

// TimelineHandler serves /api/timeline: project pricing and saved estimates.
type TimelineHandler struct {
	usecase usecase.ITimelineUseCase
}

func NewTimelineHandler(uc usecase.ITimelineUseCase) *TimelineHandler {
	return &TimelineHandler{usecase: uc}
}

// Calculate prices a project without saving it or consuming discounts.
func (h *TimelineHandler) Calculate(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	req, ok := bindTimelineRequest(c)
	if !ok {
		return
	}

	quote, err := h.usecase.Calculate(c.Request.Context(), p, req)
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// Save prices the project, records discount usage and stores the estimate.
func (h *TimelineHandler) Save(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	req, ok := bindTimelineRequest(c)
	if !ok {
		return
	}

	estimate, err := h.usecase.Save(c.Request.Context(), p, req)
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *TimelineHandler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	estimates, err := h.usecase.ListMine(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

func (h *TimelineHandler) Get(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	estimate, err := h.usecase.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *TimelineHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	estimate, err := h.usecase.UpdateStatus(c.Request.Context(), p, c.Param("id"), entities.EstimateStatus(payload.Status))
	if err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *TimelineHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p, c.Param("id")); err != nil {
		writeError(c, mapTimelineError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func bindTimelineRequest(c *gin.Context) (usecase.EstimateRequest, bool) {
	var payload request.TimelineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return usecase.EstimateRequest{}, false
	}
	req, err := payload.ToEstimateRequest()
	if err != nil {
		badRequest(c, err.Error())
		return usecase.EstimateRequest{}, false
	}
	return req, true
}

func mapTimelineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProject):
		return pkg.NewDomainError("INVALID_PROJECT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidContractorID),
		errors.Is(err, usecase.ErrInvalidEstimateStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContractorUnavailable):
		return pkg.NewDomainErrorSimple("CONTRACTOR_UNAVAILABLE", "Contractor is not taking new projects", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Estimate status transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateInCart):
		return pkg.NewDomainErrorSimple("ESTIMATE_IN_CART", "Remove the estimate from the cart first", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return mapAccessError(err)
	}
}
