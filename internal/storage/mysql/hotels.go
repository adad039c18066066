package mysql

import (
	"context"
	"database/sql"

	"stayhub/internal/domain"
)

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func orEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

type Hotels struct{ db *sql.DB }

func NewHotels(db *sql.DB) *Hotels { return &Hotels{db: db} }

func (r *Hotels) Save(ctx context.Context, h domain.Hotel) (domain.Hotel, error) {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL, h.ID, h.Name, nullIfEmpty(h.Address))
	if err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *Hotels) ExistsByID(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM hotels WHERE id = ?)`, id).Scan(&ok)
	return ok, err
}

func (r *Hotels) FindByID(ctx context.Context, id string) (*domain.Hotel, error) {
	var h domain.Hotel
	var address sql.NullString
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(&h.ID, &h.Name, &address)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	h.Address = orEmpty(address)
	return &h, nil
}

func (r *Hotels) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	return r.query(ctx, listHotelsSQL)
}

func (r *Hotels) FindByName(ctx context.Context, name string) ([]domain.Hotel, error) {
	return r.query(ctx, listHotelsByNameSQL, name)
}

func (r *Hotels) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
	return err
}

func (r *Hotels) query(ctx context.Context, q string, args ...any) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var address sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &address); err != nil {
			return nil, err
		}
		h.Address = orEmpty(address)
		out = append(out, h)
	}
	return out, rows.Err()
}
