package statuschecks

import (
	"context"

	"github.com/mdrrmo4516/mobile2026/internal/dbx"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, check *models.StatusCheck) (*models.StatusCheck, error) {
	query := `INSERT INTO status_checks (id, client_name, timestamp) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp); err != nil {
		return nil, dbx.Wrap(err)
	}
	return check, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query := `SELECT id, client_name, timestamp FROM status_checks ORDER BY timestamp DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	out := make([]*models.StatusCheck, 0)
	for rows.Next() {
		c := &models.StatusCheck{}
		if err := rows.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
			return nil, dbx.Wrap(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return out, nil
}
