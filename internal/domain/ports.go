package domain

import (
	"context"
	"time"
)

type HotelRepository interface {
	FindByID(ctx context.Context, id int64) (Hotel, error)
	List(ctx context.Context) ([]Hotel, error)
	Create(ctx context.Context, h Hotel) (Hotel, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]Room, error)
	Create(ctx context.Context, r Room) (Room, error)
}

type ReservationRepository interface {
	// FindByID returns the reservation with its room and hotel attached.
	FindByID(ctx context.Context, id int64) (Reservation, error)
	List(ctx context.Context, f ReservationFilter) ([]Reservation, error)
	ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	// Create persists the reservation. Implementations must re-check the
	// overlap predicate under a per-room lock in the same transaction as
	// the insert and return a ConflictError if it fails, so two concurrent
	// writers cannot both slip past the service-level pre-check.
	Create(ctx context.Context, r Reservation) (Reservation, error)
}

// ReservationFilter narrows List. All fields are optional; zero filters
// means all reservations. From excludes reservations whose check_out is
// not strictly after it, To excludes those whose check_in is not strictly
// before it. Results are ordered by check_in ascending.
type ReservationFilter struct {
	RoomID  *int64
	HotelID *int64
	From    *time.Time
	To      *time.Time
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}
