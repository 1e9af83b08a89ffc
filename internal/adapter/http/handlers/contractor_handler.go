package handlers

import (
	"errors"
	"net/http"

	request "paintmarket/internal/adapter/http/dto/request"
	response "paintmarket/internal/adapter/http/dto/response"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
)

type ContractorHandler struct {
	usecase usecase.IContractorUseCase
}

func NewContractorHandler(uc usecase.IContractorUseCase) *ContractorHandler {
	return &ContractorHandler{usecase: uc}
}

func (h *ContractorHandler) List(c *gin.Context) {
	cs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapContractorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractors(cs))
}

func (h *ContractorHandler) Get(c *gin.Context) {
	ctr, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapContractorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(ctr))
}

// UpsertMine creates or updates the caller's own profile.
func (h *ContractorHandler) UpsertMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ContractorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	ctr, err := h.usecase.UpsertMine(c.Request.Context(), p, payload.ToInput())
	if err != nil {
		writeError(c, mapContractorError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromContractor(ctr))
}

func mapContractorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidContractor), errors.Is(err, usecase.ErrInvalidContractorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotContractor):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only contractors have a profile", http.StatusForbidden)
	default:
		return mapAccessError(err)
	}
}
