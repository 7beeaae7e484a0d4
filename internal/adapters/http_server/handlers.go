package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelapi/internal/app"
	"hotelapi/internal/domain"
	"hotelapi/internal/validation"
)

type Handlers struct {
	Hotels       *app.HotelService
	Rooms        *app.RoomService
	Reservations *app.ReservationService
}

// MountHandlers attaches the API routes. Everything under /api sits
// behind the API-key gate; /healthz stays open for probes.
func (s *Server) MountHandlers(h *Handlers, apiKey string) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/api", func(r chi.Router) {
		r.Use(APIKey(apiKey))

		r.Get("/hotels", h.listHotels)
		r.Post("/hotels", h.createHotel)
		r.Get("/hotels/{hotelId}/rooms", h.listRooms)
		r.Post("/hotels/{hotelId}/rooms", h.createRoom)
		r.Get("/reservations", h.listReservations)
		r.Get("/reservations/{id}", h.getReservation)
		r.Post("/reservations", h.createReservation)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses:
// validation 422, not-found 404, conflict 409, anything else 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"message": "The given data was invalid.",
			"errors":  ve.Fields,
		})
		return
	}

	var nfe *domain.NotFoundError
	if errors.As(err, &nfe) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"message": fmt.Sprintf("%s not found", nfe.Entity),
		})
		return
	}

	if errors.Is(err, domain.ErrConflict) {
		writeJSON(w, http.StatusConflict, map[string]string{
			"message": "conflicting reservation for the selected room in the given dates",
		})
		return
	}

	log.Error().Err(err).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"message": "internal server error"})
}

// decodeFields reads the body as a flat JSON object. UseNumber keeps
// integers intact for the validation layer.
func decodeFields(r *http.Request) (validation.Fields, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var f validation.Fields
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	return f, nil
}

func writeBadBody(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"message": "The given data was invalid.",
		"errors":  domain.FieldErrors{"body": {"The request body must be a JSON object."}},
	})
}

// pathID parses a numeric path parameter. A malformed id can never match
// a row, so it reports not-found for the given entity.
func pathID(r *http.Request, param, entity string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, &domain.NotFoundError{Entity: entity}
	}
	return id, nil
}

// ---- hotels ----

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.Index(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFields(r)
	if err != nil {
		writeBadBody(w)
		return
	}
	hotel, err := h.Hotels.Store(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

// ---- rooms ----

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "hotelId", "hotel")
	if err != nil {
		writeError(w, err)
		return
	}
	rooms, err := h.Rooms.Index(r.Context(), hotelID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	hotelID, err := pathID(r, "hotelId", "hotel")
	if err != nil {
		writeError(w, err)
		return
	}
	f, err := decodeFields(r)
	if err != nil {
		writeBadBody(w)
		return
	}
	room, err := h.Rooms.Store(r.Context(), hotelID, f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

// ---- reservations ----

func (h *Handlers) listReservations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, ferrs := validation.ReservationFilters(map[string]string{
		"room_id":  q.Get("room_id"),
		"hotel_id": q.Get("hotel_id"),
		"from":     q.Get("from"),
		"to":       q.Get("to"),
	})
	if ferrs != nil {
		writeError(w, &domain.ValidationError{Fields: ferrs})
		return
	}
	out, err := h.Reservations.Index(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getReservation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "reservation")
	if err != nil {
		writeError(w, err)
		return
	}
	rv, err := h.Reservations.Show(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

func (h *Handlers) createReservation(w http.ResponseWriter, r *http.Request) {
	f, err := decodeFields(r)
	if err != nil {
		writeBadBody(w)
		return
	}
	rv, err := h.Reservations.Store(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}
