package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/httpresp"
)

// DirectoryHandler serves the doctor/patient reference data used by
// selection views and admin modals.
type DirectoryHandler struct {
	repo domain.Repository
}

func NewDirectoryHandler(repo domain.Repository) *DirectoryHandler {
	return &DirectoryHandler{repo: repo}
}

func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.repo.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_doctors", "Failed to load doctors.")
		return
	}
	httpresp.List(c, doctors)
}

func (h *DirectoryHandler) ListPatients(c *gin.Context) {
	patients, err := h.repo.ListPatients(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Failed to load patients.")
		return
	}
	httpresp.List(c, patients)
}
