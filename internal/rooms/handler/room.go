package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"hotelbooking/internal/rooms/service"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) Filter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bounds, err := parsePriceRange(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Filter", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	rooms, err := h.service.Filter(r.Context(), bounds)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Filter", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "Filter", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	// httprouter cannot hold /rooms/filter next to /rooms/:id, so the static
	// segment is dispatched from here.
	if id == "filter" {
		h.Filter(w, r, ps)
		return
	}

	room, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) GetDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	details, err := h.service.GetDetails(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetDetails", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, details); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDetails", "operation", "WriteSuccess", "error", err)
	}
}

func parsePriceRange(r *http.Request) (model.PriceRange, error) {
	query := r.URL.Query()

	var bounds model.PriceRange
	if s := query.Get("minPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.PriceRange{}, apperrors.InvalidInput("invalid minPrice parameter: " + s)
		}
		bounds.Min = &v
	}
	if s := query.Get("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.PriceRange{}, apperrors.InvalidInput("invalid maxPrice parameter: " + s)
		}
		bounds.Max = &v
	}

	return bounds, nil
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.List)
	router.GET("/rooms/:id", h.GetByID)
	router.GET("/rooms/:id/details", h.GetDetails)
}
