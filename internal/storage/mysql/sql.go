package mysql

const insertHotelSQL = `
INSERT INTO hotels (name, city, address, phone, email)
VALUES (?, ?, ?, ?, ?)
`

const getHotelSQL = `
SELECT id, name, city, address, phone, email, created_at
FROM hotels
WHERE id = ?
`

const listHotelsSQL = `
SELECT id, name, city, address, phone, email, created_at
FROM hotels
ORDER BY id
`

const insertRoomSQL = `
INSERT INTO rooms (hotel_id, name, capacity, room_type, price)
VALUES (?, ?, ?, ?, ?)
`

const getRoomSQL = `
SELECT id, hotel_id, name, capacity, room_type, price, created_at
FROM rooms
WHERE id = ?
`

const listRoomsByHotelSQL = `
SELECT id, hotel_id, name, capacity, room_type, price, created_at
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`

const insertReservationSQL = `
INSERT INTO reservations (room_id, guest_name, guest_email, guest_count, check_in, check_out)
VALUES (?, ?, ?, ?, ?, ?)
`

// Reservation reads join the room and hotel so show/index can return the
// full context in one round trip.
const reservationSelectPrefix = `
SELECT
  rv.id, rv.room_id, rv.guest_name, rv.guest_email, rv.guest_count,
  rv.check_in, rv.check_out, rv.created_at,
  rm.id, rm.hotel_id, rm.name, rm.capacity, rm.room_type, rm.price, rm.created_at,
  h.id, h.name, h.city, h.address, h.phone, h.email, h.created_at
FROM reservations rv
JOIN rooms rm ON rm.id = rv.room_id
JOIN hotels h ON h.id = rm.hotel_id
`

const getReservationSQL = reservationSelectPrefix + `WHERE rv.id = ?`

// Overlap predicate with exclusive boundaries on both sides: intervals
// are half-open [check_in, check_out), so back-to-back stays never match.
const existsOverlapSQL = `
SELECT EXISTS(
  SELECT 1 FROM reservations
  WHERE room_id = ? AND check_in < ? AND check_out > ?
)
`

// Inside the reservation-create transaction the room row is locked first
// to serialize writers per room, then the overlap predicate is re-checked.
const lockRoomSQL = `SELECT id FROM rooms WHERE id = ? FOR UPDATE`
