package validation

import (
	"strconv"

	"hotelapi/internal/domain"
)

// ReservationFilters validates the optional index query parameters.
// Empty strings count as absent, mirroring the field presence policy.
func ReservationFilters(q map[string]string) (domain.ReservationFilter, domain.FieldErrors) {
	var f domain.ReservationFilter
	errs := domain.FieldErrors{}

	if s := q["room_id"]; s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			errs.Add("room_id", "The room_id field must be an integer.")
		} else {
			f.RoomID = &id
		}
	}

	if s := q["hotel_id"]; s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			errs.Add("hotel_id", "The hotel_id field must be an integer.")
		} else {
			f.HotelID = &id
		}
	}

	if s := q["from"]; s != "" {
		t, err := ParseDateTime(s)
		if err != nil {
			errs.Add("from", "The from field is not a valid date.")
		} else {
			f.From = &t
		}
	}

	if s := q["to"]; s != "" {
		t, err := ParseDateTime(s)
		if err != nil {
			errs.Add("to", "The to field is not a valid date.")
		} else {
			f.To = &t
		}
	}

	if len(errs) > 0 {
		return domain.ReservationFilter{}, errs
	}
	return f, nil
}
