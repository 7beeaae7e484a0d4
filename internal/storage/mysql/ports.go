package mysql

import (
	"context"
	"time"

	"hotelapi/internal/domain"
)

// Per-entity views over the shared repo, matching the persistence ports.

func (r *Repo) Hotels() domain.HotelRepository             { return hotels{r} }
func (r *Repo) Rooms() domain.RoomRepository               { return rooms{r} }
func (r *Repo) Reservations() domain.ReservationRepository { return reservations{r} }

type hotels struct{ *Repo }

func (h hotels) FindByID(ctx context.Context, id int64) (domain.Hotel, error) {
	return h.FindHotelByID(ctx, id)
}
func (h hotels) List(ctx context.Context) ([]domain.Hotel, error) { return h.ListHotels(ctx) }
func (h hotels) Create(ctx context.Context, v domain.Hotel) (domain.Hotel, error) {
	return h.CreateHotel(ctx, v)
}

type rooms struct{ *Repo }

func (r rooms) FindByID(ctx context.Context, id int64) (domain.Room, error) {
	return r.FindRoomByID(ctx, id)
}
func (r rooms) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return r.ListRoomsByHotel(ctx, hotelID)
}
func (r rooms) Create(ctx context.Context, v domain.Room) (domain.Room, error) {
	return r.CreateRoom(ctx, v)
}

type reservations struct{ *Repo }

func (r reservations) FindByID(ctx context.Context, id int64) (domain.Reservation, error) {
	return r.FindReservationByID(ctx, id)
}
func (r reservations) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	return r.ListReservations(ctx, f)
}
func (r reservations) ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	return r.Repo.ExistsOverlap(ctx, roomID, checkIn, checkOut)
}
func (r reservations) Create(ctx context.Context, v domain.Reservation) (domain.Reservation, error) {
	return r.CreateReservation(ctx, v)
}
