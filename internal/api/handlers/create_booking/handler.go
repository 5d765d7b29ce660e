package create_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WashE-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/WashE-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBuilding    = "unknown building"
	msgInvalidDay         = "unknown day of week"
	msgInvalidTime        = "unknown time slot"
	msgInvalidMachines    = "machines count must be between 1 and 3"
	msgCommentTooLong     = "comment must be at most 200 characters"
	msgSlotTaken          = "this slot is already booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/{ownerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/{ownerId}/bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(ownerID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /users/{ownerId}/bookings - slot taken: owner=%s, %s/%s/%s",
				ownerID, req.Building, req.Day, req.Time)
			// Сообщение называет занятый слот
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken+": "+req.Building+", "+req.Day+", "+req.Time)

		case errors.Is(err, createBooking.ErrInvalidBuilding):
			handlers.RespondBadRequest(w, msgInvalidBuilding)

		case errors.Is(err, createBooking.ErrInvalidDay):
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, createBooking.ErrInvalidTime):
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidMachines):
			handlers.RespondBadRequest(w, msgInvalidMachines)

		case errors.Is(err, createBooking.ErrCommentTooLong):
			handlers.RespondBadRequest(w, msgCommentTooLong)

		default:
			h.logger.Error("POST /users/{ownerId}/bookings - failed: owner=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/{ownerId}/bookings - created: id=%s, owner=%s", result.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
