package validation

import (
	"fmt"
	"time"

	pgvalidator "github.com/go-playground/validator/v10"

	"hotelapi/internal/domain"
)

// validate backs the email-syntax rule. Var-level checks only; the
// structural rules are explicit so the error map can collect everything.
var validate = pgvalidator.New()

func validEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// Normalized inputs, ready for the persistence gateway.

type HotelInput struct {
	Name    string
	City    *string
	Address *string
	Phone   *string
	Email   *string
}

type RoomInput struct {
	Name     string
	Capacity int
	RoomType *string
	Price    *float64
}

type ReservationInput struct {
	RoomID     int64
	GuestName  string
	GuestEmail *string
	GuestCount int
	CheckIn    time.Time
	CheckOut   time.Time
}

func requiredMsg(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

func stringMsg(field string) string {
	return fmt.Sprintf("The %s field must be a string.", field)
}

// optionalString applies the shared optional-string rule and copies the
// value into dst when it passes.
func optionalString(f Fields, field string, dst **string, errs domain.FieldErrors) {
	if !f.present(field) {
		return
	}
	s, ok := asString(f[field])
	if !ok {
		errs.Add(field, stringMsg(field))
		return
	}
	*dst = &s
}

// Hotel validates hotel creation fields. A non-empty error map means the
// input was rejected and the returned value must not be used.
func Hotel(f Fields) (HotelInput, domain.FieldErrors) {
	var in HotelInput
	errs := domain.FieldErrors{}

	if !f.present("name") {
		errs.Add("name", requiredMsg("name"))
	} else if s, ok := asString(f["name"]); !ok {
		errs.Add("name", stringMsg("name"))
	} else {
		in.Name = s
	}

	optionalString(f, "city", &in.City, errs)
	optionalString(f, "address", &in.Address, errs)
	optionalString(f, "phone", &in.Phone, errs)

	if f.present("email") {
		s, ok := asString(f["email"])
		if !ok || !validEmail(s) {
			errs.Add("email", "The email field must be a valid email address.")
		} else {
			in.Email = &s
		}
	}

	if len(errs) > 0 {
		return HotelInput{}, errs
	}
	return in, nil
}

// Room validates room creation fields. Capacity defaults to 2 when absent,
// matching the schema default.
func Room(f Fields) (RoomInput, domain.FieldErrors) {
	in := RoomInput{Capacity: 2}
	errs := domain.FieldErrors{}

	if !f.present("name") {
		errs.Add("name", requiredMsg("name"))
	} else if s, ok := asString(f["name"]); !ok {
		errs.Add("name", stringMsg("name"))
	} else {
		in.Name = s
	}

	if f.present("capacity") {
		n, ok := asInt(f["capacity"])
		switch {
		case !ok:
			errs.Add("capacity", "The capacity field must be an integer.")
		case n < 1:
			errs.Add("capacity", "The capacity field must be at least 1.")
		default:
			in.Capacity = int(n)
		}
	}

	optionalString(f, "room_type", &in.RoomType, errs)

	if f.present("price") {
		p, ok := asNumber(f["price"])
		switch {
		case !ok:
			errs.Add("price", "The price field must be a number.")
		case p < 0:
			errs.Add("price", "The price field must be at least 0.")
		default:
			in.Price = &p
		}
	}

	if len(errs) > 0 {
		return RoomInput{}, errs
	}
	return in, nil
}

// Reservation validates reservation creation fields, parses both
// timestamps, and enforces check_out strictly after check_in. Guest count
// defaults to 1 when absent.
func Reservation(f Fields) (ReservationInput, domain.FieldErrors) {
	in := ReservationInput{GuestCount: 1}
	errs := domain.FieldErrors{}

	if !f.present("room_id") {
		errs.Add("room_id", requiredMsg("room_id"))
	} else if id, ok := asInt(f["room_id"]); !ok {
		errs.Add("room_id", "The room_id field must be an integer.")
	} else {
		in.RoomID = id
	}

	if !f.present("guest_name") {
		errs.Add("guest_name", requiredMsg("guest_name"))
	} else if s, ok := asString(f["guest_name"]); !ok {
		errs.Add("guest_name", stringMsg("guest_name"))
	} else {
		in.GuestName = s
	}

	if f.present("guest_email") {
		s, ok := asString(f["guest_email"])
		if !ok || !validEmail(s) {
			errs.Add("guest_email", "The guest_email field must be a valid email address.")
		} else {
			in.GuestEmail = &s
		}
	}

	if f.present("guest_count") {
		n, ok := asInt(f["guest_count"])
		switch {
		case !ok:
			errs.Add("guest_count", "The guest_count field must be an integer.")
		case n < 1:
			errs.Add("guest_count", "The guest_count field must be at least 1.")
		default:
			in.GuestCount = int(n)
		}
	}

	in.CheckIn = parseRequiredDate(f, "check_in", errs)
	in.CheckOut = parseRequiredDate(f, "check_out", errs)

	if !in.CheckIn.IsZero() && !in.CheckOut.IsZero() && !in.CheckOut.After(in.CheckIn) {
		errs.Add("check_out", "The check_out field must be a date after check_in.")
	}

	if len(errs) > 0 {
		return ReservationInput{}, errs
	}
	return in, nil
}

func parseRequiredDate(f Fields, field string, errs domain.FieldErrors) time.Time {
	if !f.present(field) {
		errs.Add(field, requiredMsg(field))
		return time.Time{}
	}
	s, ok := asString(f[field])
	if !ok {
		errs.Add(field, fmt.Sprintf("The %s field is not a valid date.", field))
		return time.Time{}
	}
	t, err := ParseDateTime(s)
	if err != nil {
		errs.Add(field, fmt.Sprintf("The %s field is not a valid date.", field))
		return time.Time{}
	}
	return t
}
