package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/marketplace-api/internal/httperr"
	"github.com/BruksfildServices01/marketplace-api/internal/httpresp"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	usecase "github.com/BruksfildServices01/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create       *usecase.CreateBooking
	accept       *usecase.AcceptBooking
	reject       *usecase.RejectBooking
	cancel       *usecase.CancelBooking
	complete     *usecase.CompleteBooking
	listUser     *usecase.ListUserBookings
	listProvider *usecase.ListProviderBookings
}

func NewBookingHandler(
	create *usecase.CreateBooking,
	accept *usecase.AcceptBooking,
	reject *usecase.RejectBooking,
	cancel *usecase.CancelBooking,
	complete *usecase.CompleteBooking,
	listUser *usecase.ListUserBookings,
	listProvider *usecase.ListProviderBookings,
) *BookingHandler {
	return &BookingHandler{
		create:       create,
		accept:       accept,
		reject:       reject,
		cancel:       cancel,
		complete:     complete,
		listUser:     listUser,
		listProvider: listProvider,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ServiceID     uuid.UUID `json:"service_id" binding:"required"`
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Notes         string    `json:"notes"`
	Address       string    `json:"address"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		UserID:        userID,
		ServiceID:     req.ServiceID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		Address:       req.Address,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST
// ======================================================

// ListMine returns the caller's side of the marketplace: requests they
// made, or requests made to them, depending on role.
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := middleware.UserID(c)
	role := c.GetString(middleware.ContextUserRole)

	if role == models.RoleProvider {
		out, err := h.listProvider.Execute(c.Request.Context(), userID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, out)
		return
	}

	out, err := h.listUser.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}
	httpresp.List(c, out)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Accept(c *gin.Context) {
	h.transition(c, h.accept.Execute)
}

func (h *BookingHandler) Reject(c *gin.Context) {
	h.transition(c, h.reject.Execute)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancel.Execute)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.complete.Execute)
}

func (h *BookingHandler) transition(
	c *gin.Context,
	exec func(ctx context.Context, actorID, bookingID uuid.UUID) (*models.Booking, error),
) {
	actorID := middleware.UserID(c)

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Identificador inválido.")
		return
	}

	b, err := exec(c.Request.Context(), actorID, bookingID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")

	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado ou inativo.")

	case httperr.IsBusiness(err, "same_party"):
		httperr.BadRequest(c, "same_party", "Você não pode agendar o próprio serviço.")

	case httperr.IsBusiness(err, "past_scheduled_date"):
		httperr.BadRequest(c, "past_scheduled_date", "A data do agendamento já passou.")

	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "O agendamento não permite esta ação.")

	case httperr.IsBusiness(err, "state_conflict"):
		httperr.Conflict(c, "state_conflict", "O agendamento mudou de estado; recarregue e tente novamente.")

	default:
		httperr.Internal(c, "booking_error", "Erro ao processar agendamento.")
	}
}
