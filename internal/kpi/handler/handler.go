// Package handler provides HTTP handlers for the key-performance endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jschweizer/kpi-service/internal/kpi/model"
	"github.com/jschweizer/kpi-service/internal/kpi/service"
)

// Query parameter names of the key-performance endpoints.
const (
	paramProject  = "projectId"
	paramPeriod   = "period"
	paramInterval = "interval"
	paramEnd      = "end"
)

// Handler handles HTTP requests for key-performance endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new key-performance handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// params parses the raw query parameters of a request in one step.
func params(c *gin.Context) model.Params {
	return model.ParseRequest(
		c.Query(paramProject),
		c.Query(paramPeriod),
		c.Query(paramInterval),
		c.Query(paramEnd),
	)
}

// Validate handles GET /key-performance/validate request.
// Returns 200 with an empty body when the parameters are acceptable, or
// 400 with a field-level error collection.
func (h *Handler) Validate(c *gin.Context) {
	errs := h.service.Validate(c.Request.Context(), params(c))
	if len(errs) > 0 {
		validationFailed(c, errs)
		return
	}
	c.Status(http.StatusOK)
}

// GetKpis handles GET /key-performance/getKpis request.
// The retrieval path does not re-validate: malformed parameters yield a
// 200 response with a null body instead of an error. The body is JSON by
// default, XML when negotiated via the Accept header.
func (h *Handler) GetKpis(c *gin.Context) {
	h.logger.Debugw("kpi request incoming", "query", c.Request.URL.RawQuery)

	tl := h.service.Timeline(c.Request.Context(), params(c))
	if tl == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	switch c.NegotiateFormat(gin.MIMEJSON, gin.MIMEXML) {
	case gin.MIMEXML:
		c.XML(http.StatusOK, tl)
	default:
		c.JSON(http.StatusOK, tl)
	}
}
