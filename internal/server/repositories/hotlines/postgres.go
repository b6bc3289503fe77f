package hotlines

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/dbx"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// seedLockKey serializes concurrent seeders across processes.
const seedLockKey int64 = 0x6d647201

type PostgresRepository struct {
	db dbx.DB
}

func NewPostgresRepository(db dbx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotlines`).Scan(&n); err != nil {
		return 0, dbx.Wrap(err)
	}
	return n, nil
}

func (r *PostgresRepository) InsertMany(ctx context.Context, rows []models.Hotline) (int, error) {
	query :=
		`INSERT INTO hotlines (id, label, number, category)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (label, number) DO NOTHING
		 `

	var inserted int
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
			return err
		}
		for _, h := range rows {
			res, err := tx.ExecContext(ctx, query, h.ID, h.Label, h.Number, h.Category)
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

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Hotline, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label, number, category FROM hotlines ORDER BY category, label, number`)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	out := make([]*models.Hotline, 0)
	for rows.Next() {
		h := &models.Hotline{}
		if err := rows.Scan(&h.ID, &h.Label, &h.Number, &h.Category); err != nil {
			return nil, dbx.Wrap(err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return out, nil
}

func (r *PostgresRepository) Create(ctx context.Context, h *models.Hotline) (*models.Hotline, error) {
	query :=
		`INSERT INTO hotlines (id, label, number, category)
		 VALUES ($1, $2, $3, $4)
		 `
	if _, err := r.db.ExecContext(ctx, query, h.ID, h.Label, h.Number, h.Category); err != nil {
		return nil, mapWriteErr(err)
	}
	return h, nil
}

func (r *PostgresRepository) Update(ctx context.Context, h *models.Hotline) (*models.Hotline, error) {
	query :=
		`UPDATE hotlines SET label = $2, number = $3, category = $4
		 WHERE id = $1
		 RETURNING id, label, number, category
		 `

	out := &models.Hotline{}
	err := r.db.QueryRowContext(ctx, query, h.ID, h.Label, h.Number, h.Category).
		Scan(&out.ID, &out.Label, &out.Number, &out.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, mapWriteErr(err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hotlines WHERE id = $1`, id)
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

func mapWriteErr(err error) error {
	if _, ok := dbx.UniqueViolation(err); ok {
		return common.ErrConflict
	}
	return dbx.Wrap(err)
}
