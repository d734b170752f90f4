package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glamora/salon-scheduler/internal/httperr"
	"github.com/glamora/salon-scheduler/internal/httpresp"
	"github.com/glamora/salon-scheduler/internal/middleware"
	"github.com/glamora/salon-scheduler/internal/timezone"
	ucBooking "github.com/glamora/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	admitUC        *ucBooking.AdmitBooking
	availabilityUC *ucBooking.GetAvailability
	updateStatusUC *ucBooking.UpdateStatus
	markSeenUC     *ucBooking.MarkSeen
	listUC         *ucBooking.ListBookings

	loc *time.Location
}

func NewBookingHandler(
	admitUC *ucBooking.AdmitBooking,
	availabilityUC *ucBooking.GetAvailability,
	updateStatusUC *ucBooking.UpdateStatus,
	markSeenUC *ucBooking.MarkSeen,
	listUC *ucBooking.ListBookings,
	salonTZ string,
) *BookingHandler {
	return &BookingHandler{
		admitUC:        admitUC,
		availabilityUC: availabilityUC,
		updateStatusUC: updateStatusUC,
		markSeenUC:     markSeenUC,
		listUC:         listUC,
		loc:            timezone.Location(salonTZ),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID    uint   `json:"serviceId" binding:"required"`
	CustomerName string `json:"customerName" binding:"required"`
	PhoneNumber  string `json:"phoneNumber" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status        *string `json:"status"`
	SuggestedDate *string `json:"suggestedDate"`
	AdminNotes    *string `json:"adminNotes"`
}

// ======================================================
// ERROR TRANSLATION
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case httperr.CodeServiceNotFound:
		httperr.NotFound(c, code, "Service not found.")
	case httperr.CodeBookingNotFound:
		httperr.NotFound(c, code, "Booking not found.")
	case httperr.CodeOutOfHours:
		httperr.BadRequest(c, code, "Bookings are only available between 09:00 and 18:00.")
	case httperr.CodeMisalignedSlot:
		httperr.BadRequest(c, code, "Please select a time slot in 15-minute intervals.")
	case httperr.CodeSlotTaken:
		httperr.BadRequest(c, code, "That time slot is already booked.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Booking status cannot change that way.")
	case httperr.CodeInvalidStatus:
		httperr.BadRequest(c, code, "Unknown booking status.")
	case httperr.CodeInvalidRequest:
		httperr.BadRequest(c, code, "Invalid booking data.")
	default:
		httperr.Internal(c, httperr.CodeStoreUnavailable, "Storage failure, please retry.")
	}
}

// ======================================================
// SLOTS
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query parameter date is required.")
		return
	}

	date, err := parseDate(dateStr, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid booking data.")
		return
	}

	start, err := parseDateTime(req.Date, h.loc)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Date must be an ISO date-time.")
		return
	}

	created, err := h.admitUC.Execute(c.Request.Context(), ucBooking.AdmitBookingInput{
		ServiceID:    req.ServiceID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Start:        start,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, bookings)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Booking id must be numeric.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid status payload.")
		return
	}

	var suggested *time.Time
	if req.SuggestedDate != nil {
		t, err := parseDateTime(*req.SuggestedDate, h.loc)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "suggestedDate must be an ISO date-time.")
			return
		}
		suggested = &t
	}

	staffID := staffIDFrom(c)

	updated, err := h.updateStatusUC.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		BookingID:     uint(id),
		StaffID:       staffID,
		Status:        req.Status,
		SuggestedDate: suggested,
		AdminNotes:    req.AdminNotes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// SEEN
// ======================================================

func (h *BookingHandler) MarkSeen(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Booking id must be numeric.")
		return
	}

	updated, err := h.markSeenUC.Execute(c.Request.Context(), uint(id), staffIDFrom(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, updated)
}

func staffIDFrom(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
