package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Room struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"` // schema default 2
	RoomType  *string   `json:"room_type"`
	Price     *float64  `json:"price"`
	CreatedAt time.Time `json:"created_at"`

	// Hotel is populated on read paths that join the parent.
	Hotel *Hotel `json:"hotel,omitempty"`
}
