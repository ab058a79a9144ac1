package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-booking/internal/dto"
	"github.com/BruksfildServices01/service-booking/internal/httperr"
	"github.com/BruksfildServices01/service-booking/internal/httpresp"
	"github.com/BruksfildServices01/service-booking/internal/middleware"
	ucReview "github.com/BruksfildServices01/service-booking/internal/usecase/review"
)

type ReviewHandler struct {
	create    *ucReview.CreateReview
	list      *ucReview.ListReviews
	byBooking *ucReview.GetReviewByBooking
	delete    *ucReview.DeleteReview
	summary   *ucReview.RatingSummary
}

func NewReviewHandler(
	create *ucReview.CreateReview,
	list *ucReview.ListReviews,
	byBooking *ucReview.GetReviewByBooking,
	del *ucReview.DeleteReview,
	summary *ucReview.RatingSummary,
) *ReviewHandler {
	return &ReviewHandler{
		create:    create,
		list:      list,
		byBooking: byBooking,
		delete:    del,
		summary:   summary,
	}
}

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// List is public. Both serviceId and service_id select one service.
func (h *ReviewHandler) List(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId", "service_id")
	if !ok {
		return
	}

	reviews, err := h.list.Execute(c.Request.Context(), serviceID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewReviewViews(reviews))
}

func (h *ReviewHandler) Summary(c *gin.Context) {
	serviceID, ok := queryID(c, "serviceId", "service_id")
	if !ok {
		return
	}
	if serviceID == nil {
		httperr.BadRequest(c, "missing_service_id", "serviceId is required")
		return
	}

	s, err := h.summary.Execute(c.Request.Context(), *serviceID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	r, err := h.create.Execute(
		c.Request.Context(),
		middleware.PrincipalFrom(c),
		ucReview.CreateReviewInput{
			BookingID: req.BookingID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewReviewView(*r))
}

func (h *ReviewHandler) ByBooking(c *gin.Context) {
	bookingID, ok := paramID(c, "bookingId")
	if !ok {
		return
	}

	r, err := h.byBooking.Execute(c.Request.Context(), bookingID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.NewReviewView(*r))
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "Review removed")
}
