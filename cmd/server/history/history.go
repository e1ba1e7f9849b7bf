// package history persists every successful what3words lookup the server
// performs. It is an audit log, not a cache: reads never short-circuit an
// API call.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Lookup struct {
	Words        string
	Latitude     float64
	Longitude    float64
	Country      string
	NearestPlace string
	Source       string
	CreatedAt    time.Time
}

type dbLookup struct {
	ID           int64     `db:"id"`
	Words        string    `db:"words"`
	Latitude     *float64  `db:"latitude"`
	Longitude    *float64  `db:"longitude"`
	Country      *string   `db:"country"`
	NearestPlace *string   `db:"nearest_place"`
	Source       string    `db:"source"`
	CreatedAt    time.Time `db:"created_at"`
}

type Repository interface {
	Record(ctx context.Context, l Lookup) error
	List(ctx context.Context, limit int) ([]Lookup, error)
}

type pgRepo struct {
	db *sqlx.DB
}

var _ Repository = (*pgRepo)(nil)

func NewPgRepository(db *sql.DB) *pgRepo {
	return &pgRepo{db: sqlx.NewDb(db, "postgres")}
}

func (r *pgRepo) Record(ctx context.Context, l Lookup) error {
	query := `
	INSERT INTO lookups (words, latitude, longitude, country, nearest_place, source)
	VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.db.ExecContext(ctx, query, l.Words, l.Latitude, l.Longitude, l.Country, l.NearestPlace, l.Source)
	if err != nil {
		return fmt.Errorf("insert lookup: %w", err)
	}

	return nil
}

func (r *pgRepo) List(ctx context.Context, limit int) ([]Lookup, error) {
	var rows []dbLookup

	query := `
	SELECT *
	FROM lookups
	ORDER BY created_at DESC
	LIMIT $1;`

	err := r.db.SelectContext(ctx, &rows, query, limit)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("select lookups: %w", err)
	}

	lookups := make([]Lookup, len(rows))
	for i := range rows {
		lookups[i] = rows[i].Map()
	}

	return lookups, nil
}

func (u dbLookup) Map() Lookup {
	l := Lookup{Words: u.Words, Source: u.Source, CreatedAt: u.CreatedAt}

	if u.Latitude != nil {
		l.Latitude = *u.Latitude
	}

	if u.Longitude != nil {
		l.Longitude = *u.Longitude
	}

	if u.Country != nil {
		l.Country = *u.Country
	}

	if u.NearestPlace != nil {
		l.NearestPlace = *u.NearestPlace
	}

	return l
}
