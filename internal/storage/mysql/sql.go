package mysql

// Writes are upserts so that save() has JPA-style semantics: insert when the
// id is new, overwrite when it already exists.

const upsertHotelSQL = `
INSERT INTO hotels (id, name, address)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  address    = VALUES(address),
  updated_at = CURRENT_TIMESTAMP
`

const upsertRoomSQL = `
INSERT INTO rooms (id, number, type, price_per_night, hotel_id)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  number          = VALUES(number),
  type            = VALUES(type),
  price_per_night = VALUES(price_per_night),
  hotel_id        = VALUES(hotel_id),
  updated_at      = CURRENT_TIMESTAMP
`

const upsertGuestSQL = `
INSERT INTO guests (id, name, email, phone)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name       = VALUES(name),
  email      = VALUES(email),
  phone      = VALUES(phone),
  updated_at = CURRENT_TIMESTAMP
`

const upsertBookingSQL = `
INSERT INTO bookings (id, room_id, guest_id, check_in, check_out)
VALUES (?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  room_id    = VALUES(room_id),
  guest_id   = VALUES(guest_id),
  check_in   = VALUES(check_in),
  check_out  = VALUES(check_out),
  updated_at = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const getHotelSQL = `SELECT id, name, address FROM hotels WHERE id = ?`

const listHotelsSQL = `SELECT id, name, address FROM hotels ORDER BY id`

const listHotelsByNameSQL = `SELECT id, name, address FROM hotels WHERE name = ? ORDER BY id`

const getRoomSQL = `SELECT id, number, type, price_per_night, hotel_id FROM rooms WHERE id = ?`

const listRoomsSQL = `SELECT id, number, type, price_per_night, hotel_id FROM rooms ORDER BY id`

const listRoomsByHotelSQL = `
SELECT id, number, type, price_per_night, hotel_id
FROM rooms WHERE hotel_id = ? ORDER BY id`

const listRoomsByHotelAndTypeSQL = `
SELECT id, number, type, price_per_night, hotel_id
FROM rooms WHERE hotel_id = ? AND type = ? ORDER BY id`

const getGuestSQL = `SELECT id, name, email, phone FROM guests WHERE id = ?`

const listGuestsSQL = `SELECT id, name, email, phone FROM guests ORDER BY id`

const getBookingSQL = `SELECT id, room_id, guest_id, check_in, check_out FROM bookings WHERE id = ?`

const listBookingsSQL = `SELECT id, room_id, guest_id, check_in, check_out FROM bookings ORDER BY id`

const listBookingsByRoomSQL = `
SELECT id, room_id, guest_id, check_in, check_out
FROM bookings WHERE room_id = ? ORDER BY id`

const listBookingsByGuestSQL = `
SELECT id, room_id, guest_id, check_in, check_out
FROM bookings WHERE guest_id = ? ORDER BY id`

// Bookings belong to a hotel transitively through their room.
const listBookingsByHotelSQL = `
SELECT b.id, b.room_id, b.guest_id, b.check_in, b.check_out
FROM bookings b
JOIN rooms r ON r.id = b.room_id
WHERE r.hotel_id = ?
ORDER BY b.id`

const existsBookingByHotelSQL = `
SELECT EXISTS(
  SELECT 1 FROM bookings b
  JOIN rooms r ON r.id = b.room_id
  WHERE r.hotel_id = ?
)`
