package mysql

import (
	"context"
	"database/sql"

	"stayhub/internal/domain"
)

type Bookings struct{ db *sql.DB }

func NewBookings(db *sql.DB) *Bookings { return &Bookings{db: db} }

func (r *Bookings) Save(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	_, err := r.db.ExecContext(ctx, upsertBookingSQL,
		b.ID, b.RoomID, b.GuestID, nullIfEmpty(b.CheckIn), nullIfEmpty(b.CheckOut))
	if err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func (r *Bookings) ExistsByID(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE id = ?)`, id).Scan(&ok)
	return ok, err
}

func (r *Bookings) ExistsByGuestID(ctx context.Context, guestID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE guest_id = ?)`, guestID).Scan(&ok)
	return ok, err
}

func (r *Bookings) ExistsByRoomID(ctx context.Context, roomID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM bookings WHERE room_id = ?)`, roomID).Scan(&ok)
	return ok, err
}

func (r *Bookings) ExistsByHotelID(ctx context.Context, hotelID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, existsBookingByHotelSQL, hotelID).Scan(&ok)
	return ok, err
}

func (r *Bookings) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	var in, out sql.NullString
	err := r.db.QueryRowContext(ctx, getBookingSQL, id).
		Scan(&b.ID, &b.RoomID, &b.GuestID, &in, &out)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.CheckIn = orEmpty(in)
	b.CheckOut = orEmpty(out)
	return &b, nil
}

func (r *Bookings) FindAll(ctx context.Context) ([]domain.Booking, error) {
	return r.query(ctx, listBookingsSQL)
}

func (r *Bookings) FindByRoomID(ctx context.Context, roomID string) ([]domain.Booking, error) {
	return r.query(ctx, listBookingsByRoomSQL, roomID)
}

func (r *Bookings) FindByGuestID(ctx context.Context, guestID string) ([]domain.Booking, error) {
	return r.query(ctx, listBookingsByGuestSQL, guestID)
}

func (r *Bookings) FindByHotelID(ctx context.Context, hotelID string) ([]domain.Booking, error) {
	return r.query(ctx, listBookingsByHotelSQL, hotelID)
}

func (r *Bookings) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	return err
}

func (r *Bookings) DeleteByGuestID(ctx context.Context, guestID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE guest_id = ?`, guestID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Bookings) DeleteByRoomID(ctx context.Context, roomID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE room_id = ?`, roomID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Bookings) query(ctx context.Context, q string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var in, co sql.NullString
		if err := rows.Scan(&b.ID, &b.RoomID, &b.GuestID, &in, &co); err != nil {
			return nil, err
		}
		b.CheckIn = orEmpty(in)
		b.CheckOut = orEmpty(co)
		out = append(out, b)
	}
	return out, rows.Err()
}
