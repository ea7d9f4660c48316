package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/carepoint/clinic-scheduler/internal/datetime"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/httperr"
	"github.com/carepoint/clinic-scheduler/internal/httpresp"
	"github.com/carepoint/clinic-scheduler/internal/middleware"
	"github.com/carepoint/clinic-scheduler/internal/models"
	"github.com/carepoint/clinic-scheduler/internal/payments"
	ucAppointment "github.com/carepoint/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	adminCreate  *ucAppointment.AdminCreateAppointment
	update       *ucAppointment.UpdateAppointment
	updateStatus *ucAppointment.UpdateStatus
	delete       *ucAppointment.DeleteAppointment
	list         *ucAppointment.ListAppointments
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	adminCreate *ucAppointment.AdminCreateAppointment,
	update *ucAppointment.UpdateAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	deleteUC *ucAppointment.DeleteAppointment,
	list *ucAppointment.ListAppointments,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		adminCreate:  adminCreate,
		update:       update,
		updateStatus: updateStatus,
		delete:       deleteUC,
		list:         list,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID uint `json:"patient_id" binding:"required"`
	DoctorID  uint `json:"doctor_id" binding:"required"`

	AppointmentDate datetime.FlexDate `json:"appointment_date"`
	AppointmentTime datetime.FlexTime `json:"appointment_time"`
	AppointmentType string            `json:"appointment_type"`

	PatientDetails models.PatientDetails `json:"patient_details"`
	Consent        bool                  `json:"consent"`

	Payment payments.Form `json:"payment"`
}

type AdminCreateRequest struct {
	PatientID uint `json:"patient_id" binding:"required"`
	DoctorID  uint `json:"doctor_id" binding:"required"`

	AppointmentDate datetime.FlexDate `json:"appointment_date"`
	AppointmentTime datetime.FlexTime `json:"appointment_time"`
	AppointmentType string            `json:"appointment_type"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate datetime.FlexDate `json:"appointment_date"`
	AppointmentTime datetime.FlexTime `json:"appointment_time"`
	AppointmentType string            `json:"appointment_type"`

	Status string `json:"status"`

	// Omitted notes stay as they are; an empty string clears them.
	Notes *string `json:"notes"`
}

// ======================================================
// BOOK (patient flow, payment-gated)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	result, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Type:      req.AppointmentType,
		Details:   req.PatientDetails,
		Consent:   req.Consent,
		Payment:   req.Payment,
	})
	if err != nil {
		h.writeBookError(c, result, err)
		return
	}

	httpresp.Created(c, gin.H{
		"appointment": result.Appointment,
		"payment":     result.Payment,
	})
}

func (h *AppointmentHandler) writeBookError(c *gin.Context, result *ucAppointment.BookResult, err error) {
	var vErr *payments.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(400, gin.H{
			"error_code": "payment_validation_failed",
			"category":   vErr.Category,
			"field":      vErr.Field,
			"message":    vErr.Reason,
		})
		return
	}

	if errors.Is(err, ucAppointment.ErrPaidNotBooked) {
		// Money settled but no appointment exists; no compensating
		// transaction is available, so tell the user explicitly.
		payload := gin.H{
			"error_code": "payment_captured_booking_failed",
			"message":    "Payment succeeded but booking failed. Please contact support.",
		}
		if result != nil && result.Payment != nil {
			payload["payment"] = result.Payment
		}
		c.JSON(502, payload)
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		httperr.BadRequest(c, code, "Booking could not be completed.")
		return
	}

	httperr.Internal(c, "failed_to_book_appointment", "Failed to book appointment.")
}

// ======================================================
// ADMIN CREATE (explicit bypass capability)
// ======================================================

func (h *AppointmentHandler) AdminCreate(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.adminCreate.Execute(c.Request.Context(), ucAppointment.AdminCreateInput{
		AdminID:   adminID,
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Type:      req.AppointmentType,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func criteriaFromQuery(c *gin.Context) domain.Criteria {
	criteria := domain.Criteria{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Search: c.Query("search"),
	}
	criteria.SetDoctor(c.Query("doctor_name"))
	criteria.SetPatient(c.Query("patient_name"))
	return criteria
}

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	patientID, ok := parseID(c, "id")
	if !ok {
		return
	}

	aps, err := h.list.ByPatient(c.Request.Context(), patientID, criteriaFromQuery(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to load appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := parseID(c, "id")
	if !ok {
		return
	}

	aps, err := h.list.ByDoctor(c.Request.Context(), doctorID, criteriaFromQuery(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to load appointments.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	doctorID, ok := parseID(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	times, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		DoctorID: doctorID,
		Date:     datetime.NormalizeDate(date),
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_load_availability", "Failed to load availability.")
		return
	}

	httpresp.List(c, times)
}

// ======================================================
// UPDATE (full edit)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AdminID:       adminID,
		AppointmentID: id,
		Date:          req.AppointmentDate,
		Time:          req.AppointmentTime,
		Type:          req.AppointmentType,
		Status:        req.Status,
		Notes:         req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// QUICK STATUS UPDATE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, "missing_status", "Status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		UserID:        userID,
		AppointmentID: id,
		Status:        status,
	})
	if err != nil {
		writeBusinessError(c, err, "failed_to_update_status", "Failed to update status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), adminID, id); err != nil {
		writeBusinessError(c, err, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

func writeBusinessError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	if code := httperr.BusinessCode(err); code != "" {
		switch code {
		case "appointment_not_found", "doctor_not_found", "patient_not_found":
			httperr.NotFound(c, code, fallbackMsg)
		case "invalid_state":
			httperr.Conflict(c, code, fallbackMsg)
		default:
			httperr.BadRequest(c, code, fallbackMsg)
		}
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMsg)
}
