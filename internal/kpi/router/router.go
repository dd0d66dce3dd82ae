// Package router provides key-performance module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jschweizer/kpi-service/internal/kpi/cache"
	"github.com/jschweizer/kpi-service/internal/kpi/handler"
	"github.com/jschweizer/kpi-service/internal/kpi/service"
	"github.com/jschweizer/kpi-service/internal/tracker/repository"
)

// RegisterRoutes registers key-performance module routes. The tracker
// database handle is read-only; the KPI cache carries its own backend
// connection with independent failure handling.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, kpiCache cache.Cache, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, kpiCache, logger)
	h := handler.New(svc, logger)

	group := r.Group("/key-performance")
	group.GET("/validate", h.Validate)
	group.GET("/getKpis", h.GetKpis)
}
