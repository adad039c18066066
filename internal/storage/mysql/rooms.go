package mysql

import (
	"context"
	"database/sql"

	"stayhub/internal/domain"
)

type Rooms struct{ db *sql.DB }

func NewRooms(db *sql.DB) *Rooms { return &Rooms{db: db} }

func (r *Rooms) Save(ctx context.Context, rm domain.Room) (domain.Room, error) {
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID, rm.Number, nullIfEmpty(rm.Type), rm.PricePerNight, rm.HotelID)
	if err != nil {
		return domain.Room{}, err
	}
	return rm, nil
}

func (r *Rooms) ExistsByID(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = ?)`, id).Scan(&ok)
	return ok, err
}

func (r *Rooms) FindByID(ctx context.Context, id string) (*domain.Room, error) {
	var rm domain.Room
	var typ sql.NullString
	var price sql.NullFloat64
	err := r.db.QueryRowContext(ctx, getRoomSQL, id).
		Scan(&rm.ID, &rm.Number, &typ, &price, &rm.HotelID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rm.Type = orEmpty(typ)
	rm.PricePerNight = price.Float64
	return &rm, nil
}

func (r *Rooms) FindAll(ctx context.Context) ([]domain.Room, error) {
	return r.query(ctx, listRoomsSQL)
}

func (r *Rooms) FindByHotelID(ctx context.Context, hotelID string) ([]domain.Room, error) {
	return r.query(ctx, listRoomsByHotelSQL, hotelID)
}

func (r *Rooms) FindByHotelIDAndType(ctx context.Context, hotelID, roomType string) ([]domain.Room, error) {
	return r.query(ctx, listRoomsByHotelAndTypeSQL, hotelID, roomType)
}

func (r *Rooms) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	return err
}

func (r *Rooms) DeleteByHotelID(ctx context.Context, hotelID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE hotel_id = ?`, hotelID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Rooms) query(ctx context.Context, q string, args ...any) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		var rm domain.Room
		var typ sql.NullString
		var price sql.NullFloat64
		if err := rows.Scan(&rm.ID, &rm.Number, &typ, &price, &rm.HotelID); err != nil {
			return nil, err
		}
		rm.Type = orEmpty(typ)
		rm.PricePerNight = price.Float64
		out = append(out, rm)
	}
	return out, rows.Err()
}
