package incidents

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/dbx"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

const incidentColumns = `id, incident_type, COALESCE(date, ''), COALESCE(time, ''), latitude, longitude,
		 description, reporter_phone, images, internal_notes, status, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, incident *models.Incident) (*models.Incident, error) {
	images, err := encodeImages(incident.Images)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO incidents (id, incident_type, date, time, latitude, longitude, description,
		 reporter_phone, images, internal_notes, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 `

	_, err = r.db.ExecContext(ctx, query,
		incident.ID, incident.IncidentType, incident.Date, incident.Time,
		incident.Latitude, incident.Longitude, incident.Description, incident.ReporterPhone,
		images, incident.InternalNotes, string(incident.Status), incident.CreatedAt)

	if err != nil {
		if _, ok := dbx.UniqueViolation(err); ok {
			return nil, common.ErrConflict
		}
		return nil, dbx.Wrap(err)
	}

	return incident, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	query :=
		`SELECT ` + incidentColumns + ` FROM incidents
		 WHERE ($1 = '' OR status = $1)
		 AND ($2 = '' OR incident_type ILIKE $2 OR description ILIKE $2 OR COALESCE(reporter_phone, '') ILIKE $2)
		 ORDER BY created_at DESC
		 LIMIT $3
		 `

	rows, err := r.db.QueryContext(ctx, query, string(filter.Status), likePattern(filter.Query), filter.Limit)
	if err != nil {
		return nil, dbx.Wrap(err)
	}
	defer rows.Close()

	out := make([]*models.Incident, 0)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.Wrap(err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`
	return scanIncident(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd models.IncidentUpdate) (*models.Incident, error) {
	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}

	query :=
		`UPDATE incidents SET status = COALESCE($2, status), internal_notes = COALESCE($3, internal_notes)
		 WHERE id = $1
		 RETURNING ` + incidentColumns

	return scanIncident(r.db.QueryRowContext(ctx, query, id, status, upd.InternalNotes))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM incidents WHERE id = $1`, id)
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

func scanIncident(row scanner) (*models.Incident, error) {
	inc := &models.Incident{}
	var (
		status string
		images []byte
	)
	err := row.Scan(&inc.ID, &inc.IncidentType, &inc.Date, &inc.Time, &inc.Latitude, &inc.Longitude,
		&inc.Description, &inc.ReporterPhone, &images, &inc.InternalNotes, &status, &inc.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.Wrap(err)
	}
	inc.Status = models.IncidentStatus(status)

	inc.Images = []models.IncidentImage{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &inc.Images); err != nil {
			return nil, fmt.Errorf("decode images: %w", err)
		}
	}
	return inc, nil
}

func encodeImages(images []models.IncidentImage) (string, error) {
	if images == nil {
		images = []models.IncidentImage{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("encode images: %w", err)
	}
	return string(b), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a free-text query into an ILIKE substring pattern.
// An empty query stays empty and disables the predicate.
func likePattern(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(q) + "%"
}
