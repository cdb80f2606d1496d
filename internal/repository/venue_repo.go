package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gliitz-backend/internal/models"
)

// VenueRepo reads the curated venue directory. Write access goes through
// migrations and back-office seeds, not this service.
type VenueRepo struct {
	pool *pgxpool.Pool
}

func NewVenueRepo(pool *pgxpool.Pool) *VenueRepo {
	return &VenueRepo{pool: pool}
}

func (r *VenueRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	v := &models.Venue{}
	query := `SELECT id, name, category, area, phone, whatsapp, website, hours,
		tags, is_partner, display_rank, created_at
		FROM venues WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Category, &v.Area, &v.Phone, &v.WhatsApp, &v.Website,
		&v.Hours, &v.Tags, &v.IsPartner, &v.DisplayRank, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ListByCategory returns venues for a category ordered by display rank, so
// the first element is the one the renderer recommends.
func (r *VenueRepo) ListByCategory(ctx context.Context, category string, limit int) ([]models.Venue, error) {
	query := `SELECT id, name, category, area, phone, whatsapp, website, hours,
		tags, is_partner, display_rank, created_at
		FROM venues WHERE category = $1
		ORDER BY display_rank ASC, name ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, category, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanVenues(rows)
}

// ListByCategoryAndTag prefers venues carrying a mood tag, falling back to
// the plain category list when none match.
func (r *VenueRepo) ListByCategoryAndTag(ctx context.Context, category, tag string, limit int) ([]models.Venue, error) {
	query := `SELECT id, name, category, area, phone, whatsapp, website, hours,
		tags, is_partner, display_rank, created_at
		FROM venues WHERE category = $1 AND $2 = ANY(tags)
		ORDER BY display_rank ASC, name ASC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, category, tag, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues, err := scanVenues(rows)
	if err != nil {
		return nil, err
	}
	if len(venues) > 0 {
		return venues, nil
	}
	return r.ListByCategory(ctx, category, limit)
}

type venueRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanVenues(rows venueRows) ([]models.Venue, error) {
	var out []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Category, &v.Area, &v.Phone, &v.WhatsApp, &v.Website,
			&v.Hours, &v.Tags, &v.IsPartner, &v.DisplayRank, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
