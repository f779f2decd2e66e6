// Package inventory maintains the kiosk's local view of the lot: a small
// sqlite cache of the gateway's inventory plus the per-model count
// aggregation the category screen shows.
package inventory

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS vehicles (
	vin        TEXT PRIMARY KEY,
	year       INTEGER NOT NULL,
	make       TEXT NOT NULL,
	model      TEXT NOT NULL,
	trim       TEXT NOT NULL DEFAULT '',
	color      TEXT NOT NULL DEFAULT '',
	msrp       REAL NOT NULL DEFAULT 0,
	status     TEXT NOT NULL DEFAULT '',
	stock_no   TEXT NOT NULL DEFAULT '',
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_vehicles_model ON vehicles(model);
`

// record mirrors the vehicles table.
type record struct {
	VIN       string    `db:"vin"`
	Year      int       `db:"year"`
	Make      string    `db:"make"`
	Model     string    `db:"model"`
	Trim      string    `db:"trim"`
	Color     string    `db:"color"`
	MSRP      float64   `db:"msrp"`
	Status    string    `db:"status"`
	StockNo   string    `db:"stock_no"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r record) vehicle() dealer.Vehicle {
	return dealer.Vehicle{
		VIN:     r.VIN,
		Year:    r.Year,
		Make:    r.Make,
		Model:   r.Model,
		Trim:    r.Trim,
		Color:   r.Color,
		MSRP:    r.MSRP,
		Status:  r.Status,
		StockNo: r.StockNo,
	}
}

// Store is the sqlite-backed inventory cache. It keeps the last successful
// gateway snapshot so an offline kiosk still shows counts.
type Store struct {
	db     *sqlx.DB
	logger logging.Logger
}

// Open opens (and bootstraps) the cache at path. ":memory:" works for
// tests and throwaway kiosks.
func Open(path string, logger logging.Logger) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.Inventory, "failed to open inventory cache", err).
			WithOp("inventory.Open")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.Inventory, "failed to bootstrap inventory schema", err).
			WithOp("inventory.Open")
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceAll swaps the cached snapshot for a new one atomically.
func (s *Store) ReplaceAll(ctx context.Context, vehicles []dealer.Vehicle) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.Inventory, "failed to begin cache refresh", err).
			WithOp("inventory.ReplaceAll")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles`); err != nil {
		return errors.Wrap(errors.Inventory, "failed to clear cache", err).
			WithOp("inventory.ReplaceAll")
	}

	now := time.Now()
	for _, v := range vehicles {
		rec := record{
			VIN: v.VIN, Year: v.Year, Make: v.Make, Model: v.Model,
			Trim: v.Trim, Color: v.Color, MSRP: v.MSRP,
			Status: v.Status, StockNo: v.StockNo, UpdatedAt: now,
		}
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO vehicles (vin, year, make, model, trim, color, msrp, status, stock_no, updated_at)
			VALUES (:vin, :year, :make, :model, :trim, :color, :msrp, :status, :stock_no, :updated_at)`,
			rec)
		if err != nil {
			return errors.Wrap(errors.Inventory, "failed to cache vehicle", err).
				WithOp("inventory.ReplaceAll")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.Inventory, "failed to commit cache refresh", err).
			WithOp("inventory.ReplaceAll")
	}
	s.logger.Debug("inventory cache refreshed", "vehicles", len(vehicles))
	return nil
}

// Vehicles returns the cached snapshot.
func (s *Store) Vehicles(ctx context.Context) ([]dealer.Vehicle, error) {
	var recs []record
	if err := s.db.SelectContext(ctx, &recs, `SELECT * FROM vehicles ORDER BY model, vin`); err != nil {
		return nil, errors.Wrap(errors.Inventory, "failed to read inventory cache", err).
			WithOp("inventory.Vehicles")
	}

	vehicles := make([]dealer.Vehicle, len(recs))
	for i, r := range recs {
		vehicles[i] = r.vehicle()
	}
	return vehicles, nil
}

// CountByModel returns raw per-model counts from the cache.
func (s *Store) CountByModel(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Model string `db:"model"`
		N     int    `db:"n"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT model, COUNT(*) AS n FROM vehicles GROUP BY model`); err != nil {
		return nil, errors.Wrap(errors.Inventory, "failed to count inventory cache", err).
			WithOp("inventory.CountByModel")
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Model] = r.N
	}
	return counts, nil
}

// Empty reports whether the cache holds no vehicles.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM vehicles`); err != nil {
		return false, errors.Wrap(errors.Inventory, "failed to inspect inventory cache", err).
			WithOp("inventory.Empty")
	}
	return n == 0, nil
}
