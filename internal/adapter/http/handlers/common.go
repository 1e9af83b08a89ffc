package handlers

import (
	"errors"
	"net/http"

	"paintmarket/internal/adapter/http/middleware"
	"paintmarket/internal/infrastructure/auth"
	"paintmarket/internal/usecase"
	"paintmarket/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// principal returns the authenticated caller or answers 401.
func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		writeError(c, errUnauthorized)
	}
	return p, ok
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("[http][handler] request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(appErr.Err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badRequest(c *gin.Context, message string) {
	writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest))
}

// mapAccessError covers the authorization errors every use case shares and
// falls back to 500.
func mapAccessError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed to access this resource", http.StatusForbidden)
	case errors.Is(err, usecase.ErrContractorProfileReq):
		return pkg.NewDomainErrorSimple("CONTRACTOR_PROFILE_REQUIRED", "A contractor profile is required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrContractorNotFound):
		return pkg.NewDomainErrorSimple("CONTRACTOR_NOT_FOUND", "Contractor not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
