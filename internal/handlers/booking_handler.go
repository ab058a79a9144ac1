package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/dto"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *ucBooking.CreateBooking
	listMine     *ucBooking.ListMyBookings
	listAll      *ucBooking.ListAllBookings
	updateStatus *ucBooking.UpdateBookingStatus
	delete       *ucBooking.DeleteBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	listMine *ucBooking.ListMyBookings,
	listAll *ucBooking.ListAllBookings,
	updateStatus *ucBooking.UpdateBookingStatus,
	del *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		listMine:     listMine,
		listAll:      listAll,
		updateStatus: updateStatus,
		delete:       del,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID   uint   `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required,date"`
	BookingTime string `json:"booking_time" binding:"required,clock"`
	Address     string `json:"address" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CUSTOMER
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		ucBooking.CreateBookingInput{
			ServiceID: req.ServiceID,
			Date:      req.BookingDate,
			Time:      req.BookingTime,
			Address:   req.Address,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewBookingView(*b, dto.WithUserContact))
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.listMine.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingViews(bookings, dto.WithoutUser))
}

// ======================================================
// ADMIN
// ======================================================

func (h *BookingHandler) All(c *gin.Context) {
	bookings, err := h.listAll.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		c.Query("status"),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingViews(bookings, dto.WithUserPhone))
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		id,
		req.Status,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewBookingView(*b, dto.WithUserContact))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Booking removed")
}
