package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotelapi/internal/adapters/observability"
	"hotelapi/internal/domain"
	"hotelapi/internal/validation"
)

func reservationCacheKey(id int64) string { return fmt.Sprintf("reservation:%d", id) }

type ReservationService struct {
	reservations domain.ReservationRepository
	rooms        domain.RoomRepository
	cache        domain.Cache
	cacheTTL     time.Duration
}

func NewReservationService(res domain.ReservationRepository, rooms domain.RoomRepository, c domain.Cache, ttl time.Duration) *ReservationService {
	return &ReservationService{reservations: res, rooms: rooms, cache: c, cacheTTL: ttl}
}

// Show fetches one reservation with its room and hotel attached.
func (s *ReservationService) Show(ctx context.Context, id int64) (domain.Reservation, error) {
	key := reservationCacheKey(id)
	var out domain.Reservation
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, s.cacheTTL)
	}
	return out, nil
}

// Index lists reservations matching the filter, ordered by check_in
// ascending. Never cached: a creation must be visible to the very next
// list call.
func (s *ReservationService) Index(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, f)
}

// Store is the core write path: validate, resolve the room, check the
// interval against existing reservations, then persist. Validation and
// lookup failures never touch the write side; a conflict is detected
// before the insert and again inside it (the gateway re-checks under a
// per-room lock), so no partial record can survive either outcome.
func (s *ReservationService) Store(ctx context.Context, f validation.Fields) (domain.Reservation, error) {
	in, ferrs := validation.Reservation(f)
	if ferrs != nil {
		return domain.Reservation{}, &domain.ValidationError{Fields: ferrs}
	}

	room, err := s.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		return domain.Reservation{}, err
	}

	taken, err := s.reservations.ExistsOverlap(ctx, room.ID, in.CheckIn, in.CheckOut)
	if err != nil {
		return domain.Reservation{}, err
	}
	if taken {
		observability.ObserveConflict()
		log.Warn().
			Int64("room_id", room.ID).
			Time("check_in", in.CheckIn).
			Time("check_out", in.CheckOut).
			Msg("reservation conflict")
		return domain.Reservation{}, &domain.ConflictError{RoomID: room.ID, CheckIn: in.CheckIn, CheckOut: in.CheckOut}
	}

	r, err := s.reservations.Create(ctx, domain.Reservation{
		RoomID:     room.ID,
		GuestName:  in.GuestName,
		GuestEmail: in.GuestEmail,
		GuestCount: in.GuestCount,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
	})
	if err != nil {
		// A concurrent writer can win the slot between the pre-check and
		// the insert; the gateway reports that as a ConflictError too.
		if errors.Is(err, domain.ErrConflict) {
			observability.ObserveConflict()
			log.Warn().Int64("room_id", room.ID).Msg("reservation conflict on insert")
		}
		return domain.Reservation{}, err
	}

	log.Info().Int64("id", r.ID).Int64("room_id", r.RoomID).Msg("reservation created")
	return r, nil
}
