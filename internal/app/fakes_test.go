package app_test

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"hotelapi/internal/domain"
)

// ---- fakes ----

type fakeHotelRepo struct {
	hotels  map[int64]domain.Hotel
	nextID  int64
	creates int
}

func newFakeHotelRepo() *fakeHotelRepo {
	return &fakeHotelRepo{hotels: map[int64]domain.Hotel{}}
}

func (f *fakeHotelRepo) FindByID(ctx context.Context, id int64) (domain.Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return domain.Hotel{}, &domain.NotFoundError{Entity: "hotel", ID: id}
	}
	return h, nil
}

func (f *fakeHotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	out := []domain.Hotel{}
	for _, h := range f.hotels {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeHotelRepo) Create(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	f.creates++
	f.nextID++
	h.ID = f.nextID
	h.CreatedAt = time.Now().UTC()
	f.hotels[h.ID] = h
	return h, nil
}

type fakeRoomRepo struct {
	rooms   map[int64]domain.Room
	nextID  int64
	creates int
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: map[int64]domain.Room{}}
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id int64) (domain.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return domain.Room{}, &domain.NotFoundError{Entity: "room", ID: id}
	}
	return r, nil
}

func (f *fakeRoomRepo) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	out := []domain.Room{}
	for _, r := range f.rooms {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRoomRepo) Create(ctx context.Context, r domain.Room) (domain.Room, error) {
	f.creates++
	f.nextID++
	r.ID = f.nextID
	f.rooms[r.ID] = r
	return r, nil
}

func (f *fakeRoomRepo) add(id, hotelID int64) {
	f.rooms[id] = domain.Room{ID: id, HotelID: hotelID, Name: "room", Capacity: 2}
}

// fakeReservationRepo mirrors the MySQL gateway contract, including the
// re-check-on-create behavior.
type fakeReservationRepo struct {
	reservations  []domain.Reservation
	nextID        int64
	overlapCalls  int
	creates       int
	skipPrecheck  bool // makes ExistsOverlap lie, to simulate a racing writer
}

func (f *fakeReservationRepo) FindByID(ctx context.Context, id int64) (domain.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Reservation{}, &domain.NotFoundError{Entity: "reservation", ID: id}
}

func (f *fakeReservationRepo) List(ctx context.Context, flt domain.ReservationFilter) ([]domain.Reservation, error) {
	out := []domain.Reservation{}
	for _, r := range f.reservations {
		if flt.RoomID != nil && r.RoomID != *flt.RoomID {
			continue
		}
		if flt.HotelID != nil && (r.Room == nil || r.Room.HotelID != *flt.HotelID) {
			continue
		}
		if flt.From != nil && !r.CheckOut.After(*flt.From) {
			continue
		}
		if flt.To != nil && !r.CheckIn.Before(*flt.To) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CheckIn.Before(out[j].CheckIn) })
	return out, nil
}

func (f *fakeReservationRepo) ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	f.overlapCalls++
	if f.skipPrecheck {
		return false, nil
	}
	return f.hasOverlap(roomID, checkIn, checkOut), nil
}

func (f *fakeReservationRepo) Create(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	if f.hasOverlap(r.RoomID, r.CheckIn, r.CheckOut) {
		return domain.Reservation{}, &domain.ConflictError{RoomID: r.RoomID, CheckIn: r.CheckIn, CheckOut: r.CheckOut}
	}
	f.creates++
	f.nextID++
	r.ID = f.nextID
	f.reservations = append(f.reservations, r)
	return r, nil
}

func (f *fakeReservationRepo) hasOverlap(roomID int64, checkIn, checkOut time.Time) bool {
	for _, r := range f.reservations {
		if r.RoomID == roomID && r.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}

func (f *fakeReservationRepo) add(roomID int64, checkIn, checkOut time.Time) {
	f.nextID++
	f.reservations = append(f.reservations, domain.Reservation{
		ID: f.nextID, RoomID: roomID, GuestName: "seed",
		GuestCount: 1, CheckIn: checkIn, CheckOut: checkOut,
	})
}

// fakeCache stores JSON so it works for any value type.
type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
