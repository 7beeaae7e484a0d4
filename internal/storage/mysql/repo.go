// Package mysql implements the persistence ports on database/sql. The DSN
// must set parseTime=true and loc=UTC so DATETIME columns round-trip as
// UTC time.Time values.
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hotelapi/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullF64(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- hotels ----

func (r *Repo) FindHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	row := r.db.QueryRowContext(ctx, getHotelSQL, id)
	h, err := scanHotel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Hotel{}, &domain.NotFoundError{Entity: "hotel", ID: id}
	}
	return h, err
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) CreateHotel(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Name, valStr(h.City), valStr(h.Address), valStr(h.Phone), valStr(h.Email))
	if err != nil {
		return domain.Hotel{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Hotel{}, err
	}
	return r.FindHotelByID(ctx, id)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanHotel(row rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var city, address, phone, email sql.NullString
	if err := row.Scan(&h.ID, &h.Name, &city, &address, &phone, &email, &h.CreatedAt); err != nil {
		return domain.Hotel{}, err
	}
	h.City = nullStr(city)
	h.Address = nullStr(address)
	h.Phone = nullStr(phone)
	h.Email = nullStr(email)
	return h, nil
}

// ---- rooms ----

func (r *Repo) FindRoomByID(ctx context.Context, id int64) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx, getRoomSQL, id)
	rm, err := scanRoom(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Room{}, &domain.NotFoundError{Entity: "room", ID: id}
	}
	return rm, err
}

func (r *Repo) ListRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) CreateRoom(ctx context.Context, rm domain.Room) (domain.Room, error) {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.HotelID, rm.Name, rm.Capacity, valStr(rm.RoomType), valF64(rm.Price))
	if err != nil {
		return domain.Room{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Room{}, err
	}
	return r.FindRoomByID(ctx, id)
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var rm domain.Room
	var roomType sql.NullString
	var price sql.NullFloat64
	if err := row.Scan(&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &roomType, &price, &rm.CreatedAt); err != nil {
		return domain.Room{}, err
	}
	rm.RoomType = nullStr(roomType)
	rm.Price = nullF64(price)
	return rm, nil
}

// ---- reservations ----

func (r *Repo) FindReservationByID(ctx context.Context, id int64) (domain.Reservation, error) {
	row := r.db.QueryRowContext(ctx, getReservationSQL, id)
	rv, err := scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Reservation{}, &domain.NotFoundError{Entity: "reservation", ID: id}
	}
	return rv, err
}

func (r *Repo) ListReservations(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, error) {
	var conds []string
	var args []any
	if f.RoomID != nil {
		conds = append(conds, "rv.room_id = ?")
		args = append(args, *f.RoomID)
	}
	if f.HotelID != nil {
		conds = append(conds, "rm.hotel_id = ?")
		args = append(args, *f.HotelID)
	}
	if f.From != nil {
		conds = append(conds, "rv.check_out > ?")
		args = append(args, f.From.UTC())
	}
	if f.To != nil {
		conds = append(conds, "rv.check_in < ?")
		args = append(args, f.To.UTC())
	}

	q := reservationSelectPrefix
	if len(conds) > 0 {
		q += "WHERE " + strings.Join(conds, " AND ") + "\n"
	}
	q += "ORDER BY rv.check_in, rv.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Reservation{}
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) ExistsOverlap(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, existsOverlapSQL, roomID, checkOut.UTC(), checkIn.UTC()).Scan(&exists)
	return exists, err
}

// CreateReservation inserts inside one transaction: the room row is
// locked with FOR UPDATE to serialize writers on the same room, the
// overlap predicate is re-checked, then the row goes in. Two concurrent
// requests for an overlapping slot therefore cannot both commit even if
// both passed the service-level pre-check.
func (r *Repo) CreateReservation(ctx context.Context, rv domain.Reservation) (domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Reservation{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var roomID int64
	if err := tx.QueryRowContext(ctx, lockRoomSQL, rv.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reservation{}, &domain.NotFoundError{Entity: "room", ID: rv.RoomID}
		}
		return domain.Reservation{}, err
	}

	var taken bool
	if err := tx.QueryRowContext(ctx, existsOverlapSQL, rv.RoomID, rv.CheckOut.UTC(), rv.CheckIn.UTC()).Scan(&taken); err != nil {
		return domain.Reservation{}, err
	}
	if taken {
		return domain.Reservation{}, &domain.ConflictError{RoomID: rv.RoomID, CheckIn: rv.CheckIn, CheckOut: rv.CheckOut}
	}

	res, err := tx.ExecContext(ctx, insertReservationSQL,
		rv.RoomID, rv.GuestName, valStr(rv.GuestEmail), rv.GuestCount,
		rv.CheckIn.UTC(), rv.CheckOut.UTC())
	if err != nil {
		return domain.Reservation{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Reservation{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Reservation{}, err
	}

	return r.FindReservationByID(ctx, id)
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var rv domain.Reservation
	var rm domain.Room
	var h domain.Hotel
	var guestEmail, roomType sql.NullString
	var price sql.NullFloat64
	var city, address, phone, email sql.NullString

	if err := row.Scan(
		&rv.ID, &rv.RoomID, &rv.GuestName, &guestEmail, &rv.GuestCount,
		&rv.CheckIn, &rv.CheckOut, &rv.CreatedAt,
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Capacity, &roomType, &price, &rm.CreatedAt,
		&h.ID, &h.Name, &city, &address, &phone, &email, &h.CreatedAt,
	); err != nil {
		return domain.Reservation{}, err
	}

	rv.GuestEmail = nullStr(guestEmail)
	rv.CheckIn = rv.CheckIn.UTC()
	rv.CheckOut = rv.CheckOut.UTC()
	rm.RoomType = nullStr(roomType)
	rm.Price = nullF64(price)
	h.City = nullStr(city)
	h.Address = nullStr(address)
	h.Phone = nullStr(phone)
	h.Email = nullStr(email)
	rm.Hotel = &h
	rv.Room = &rm
	return rv, nil
}
