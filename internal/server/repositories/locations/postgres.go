package locations

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/dbx"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// lockKey serializes seeding and id allocation across processes.
const lockKey int64 = 0x6d647202

const locationColumns = `id, type, name, address, lat, lng, capacity, services, hotline`

type PostgresRepository struct {
	db dbx.DB
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM map_locations`).Scan(&n); err != nil {
		return 0, dbx.Wrap(err)
	}
	return n, nil
}

func (r *PostgresRepository) InsertMany(ctx context.Context, rows []models.Location) (int, error) {
	query :=
		`INSERT INTO map_locations (` + locationColumns + `)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING
		 `

	var inserted int
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
			return err
		}
		for _, l := range rows {
			res, err := tx.ExecContext(ctx, query, l.ID, string(l.Type), l.Name, l.Address, l.Lat, l.Lng,
				l.Capacity, l.Services, l.Hotline)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			inserted += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, dbx.Wrap(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) List(ctx context.Context, locationType models.LocationType) ([]*models.Location, error) {
	query :=
		`SELECT ` + locationColumns + ` FROM map_locations
		 WHERE ($1 = '' OR type = $1)
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, string(locationType))
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	out := make([]*models.Location, 0)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, loc *models.Location) (*models.Location, error) {
	query :=
		`INSERT INTO map_locations (` + locationColumns + `)
		 SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8 FROM map_locations
		 RETURNING id
		 `

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockKey); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, query, string(loc.Type), loc.Name, loc.Address, loc.Lat, loc.Lng,
			loc.Capacity, loc.Services, loc.Hotline).Scan(&loc.ID)
	})
	if err != nil {
		if _, ok := dbx.UniqueViolation(err); ok {
			return nil, common.ErrConflict
		}
		return nil, dbx.Wrap(err)
	}
	return loc, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.LocationUpdate) (*models.Location, error) {
	var locType *string
	if upd.Type != nil {
		s := string(*upd.Type)
		locType = &s
	}

	query :=
		`UPDATE map_locations SET
		 type = COALESCE($2, type),
		 name = COALESCE($3, name),
		 address = COALESCE($4, address),
		 lat = COALESCE($5, lat),
		 lng = COALESCE($6, lng),
		 capacity = COALESCE($7, capacity),
		 services = COALESCE($8, services),
		 hotline = COALESCE($9, hotline)
		 WHERE id = $1
		 RETURNING ` + locationColumns

	return scanLocation(r.db.QueryRowContext(ctx, query, id, locType, upd.Name, upd.Address,
		upd.Lat, upd.Lng, upd.Capacity, upd.Services, upd.Hotline))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM map_locations WHERE id = $1`, id)
	if err != nil {
		return dbx.Wrap(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbx.Wrap(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLocation(row scanner) (*models.Location, error) {
	l := &models.Location{}
	var locType string
	err := row.Scan(&l.ID, &locType, &l.Name, &l.Address, &l.Lat, &l.Lng, &l.Capacity, &l.Services, &l.Hotline)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Wrap(err)
	}
	l.Type = models.LocationType(locType)
	return l, nil
}
