package mysql

import (
	"context"
	"database/sql"

	"stayhub/internal/domain"
)

// Guests persists only the row fields; the preferences document lives in the
// redisdoc store and is joined by the rules layer.
type Guests struct{ db *sql.DB }

func NewGuests(db *sql.DB) *Guests { return &Guests{db: db} }

func (r *Guests) Save(ctx context.Context, g domain.Guest) (domain.Guest, error) {
	_, err := r.db.ExecContext(ctx, upsertGuestSQL,
		g.ID, g.Name, nullIfEmpty(g.Email), nullIfEmpty(g.Phone))
	if err != nil {
		return domain.Guest{}, err
	}
	g.Preferences = nil
	return g, nil
}

func (r *Guests) ExistsByID(ctx context.Context, id string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM guests WHERE id = ?)`, id).Scan(&ok)
	return ok, err
}

func (r *Guests) FindByID(ctx context.Context, id string) (*domain.Guest, error) {
	var g domain.Guest
	var email, phone sql.NullString
	err := r.db.QueryRowContext(ctx, getGuestSQL, id).Scan(&g.ID, &g.Name, &email, &phone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.Email = orEmpty(email)
	g.Phone = orEmpty(phone)
	return &g, nil
}

func (r *Guests) FindAll(ctx context.Context) ([]domain.Guest, error) {
	rows, err := r.db.QueryContext(ctx, listGuestsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Guest
	for rows.Next() {
		var g domain.Guest
		var email, phone sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &email, &phone); err != nil {
			return nil, err
		}
		g.Email = orEmpty(email)
		g.Phone = orEmpty(phone)
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Guests) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id)
	return err
}
