package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jschweizer/kpi-service/internal/kpi/model"
)

// validationFailed writes the 400 error collection response.
func validationFailed(c *gin.Context, errs []model.ValidationError) {
	c.JSON(http.StatusBadRequest, model.NewErrorCollection(errs))
}
