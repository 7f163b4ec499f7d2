package adaptor

import (
	"encoding/json"
	"net/http"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/usecase"
	"travel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OfferingHandler struct {
	service usecase.OfferingService
	log     *zap.Logger
}

func NewOfferingHandler(service usecase.OfferingService, log *zap.Logger) *OfferingHandler {
	return &OfferingHandler{
		service: service,
		log:     log.With(zap.String("handler", "offering")),
	}
}

// CreateRide handles POST /api/rides (protected)
func (h *OfferingHandler) CreateRide(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthenticated(w, "Authentication required")
		return
	}

	var req request.CreateRideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	ride, err := h.service.CreateRide(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create ride")
		return
	}

	utils.ResponseCreated(w, "Ride created", ride)
}

// CreateLodging handles POST /api/lodgings (protected)
func (h *OfferingHandler) CreateLodging(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthenticated(w, "Authentication required")
		return
	}

	var req request.CreateLodgingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	lodging, err := h.service.CreateLodging(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create lodging")
		return
	}

	utils.ResponseCreated(w, "Lodging created", lodging)
}

// CreateEvent handles POST /api/events (protected)
func (h *OfferingHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthenticated(w, "Authentication required")
		return
	}

	var req request.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	event, err := h.service.CreateEvent(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, "Event created", event)
}

// ListRides handles GET /api/rides (public)
func (h *OfferingHandler) ListRides(w http.ResponseWriter, r *http.Request) {
	rides, err := h.service.ListRides(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list rides")
		return
	}

	utils.ResponseSuccess(w, "Rides retrieved", rides)
}

// ListLodgings handles GET /api/lodgings (public)
func (h *OfferingHandler) ListLodgings(w http.ResponseWriter, r *http.Request) {
	lodgings, err := h.service.ListLodgings(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list lodgings")
		return
	}

	utils.ResponseSuccess(w, "Lodgings retrieved", lodgings)
}

// ListEvents handles GET /api/events (public)
func (h *OfferingHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, "Events retrieved", events)
}

// GetRide handles GET /api/rides/{id} (public)
func (h *OfferingHandler) GetRide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid ride ID", nil)
		return
	}

	ride, err := h.service.GetRide(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get ride")
		return
	}

	utils.ResponseSuccess(w, "Ride retrieved", ride)
}

// GetLodging handles GET /api/lodgings/{id} (public)
func (h *OfferingHandler) GetLodging(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid lodging ID", nil)
		return
	}

	lodging, err := h.service.GetLodging(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get lodging")
		return
	}

	utils.ResponseSuccess(w, "Lodging retrieved", lodging)
}

// GetEvent handles GET /api/events/{id} (public)
func (h *OfferingHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event ID", nil)
		return
	}

	event, err := h.service.GetEvent(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, "Event retrieved", event)
}

// Deactivate handles DELETE /api/{kind}s/{id} (protected, owner only)
func (h *OfferingHandler) Deactivate(kind entity.OfferingKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			utils.ResponseUnauthenticated(w, "Authentication required")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid offering ID", nil)
			return
		}

		if err := h.service.Deactivate(r.Context(), userID, kind, id); err != nil {
			handleServiceError(w, h.log, err, "deactivate offering")
			return
		}

		utils.ResponseSuccess(w, "Offering deactivated", nil)
	}
}
