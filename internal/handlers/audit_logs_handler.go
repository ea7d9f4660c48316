package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/httpresp"
	"github.com/carepoint/clinic-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Failed to load audit logs.")
		return
	}

	httpresp.List(c, logs)
}
