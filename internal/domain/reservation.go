package domain

import "time"

type Reservation struct {
	ID         int64     `json:"id"`
	RoomID     int64     `json:"room_id"`
	GuestName  string    `json:"guest_name"`
	GuestEmail *string   `json:"guest_email"`
	GuestCount int       `json:"guest_count"` // schema default 1
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
	CreatedAt  time.Time `json:"created_at"`

	// Room (with its Hotel) is populated on show/index reads.
	Room *Room `json:"room,omitempty"`
}

// Overlaps reports whether [r.CheckIn, r.CheckOut) intersects
// [checkIn, checkOut). Intervals are half-open, so back-to-back
// stays on the same room do not overlap.
func (r Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckIn.Before(checkOut) && r.CheckOut.After(checkIn)
}
