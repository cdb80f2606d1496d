package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gliitz-backend/internal/models"
)

type BookingRepo struct {
	pool *pgxpool.Pool
}

func NewBookingRepo(pool *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

func (r *BookingRepo) Create(ctx context.Context, b *models.BookingRequest) error {
	b.ID = uuid.New()
	b.Status = models.BookingStatusPending

	query := `INSERT INTO booking_requests
		(id, user_id, conversation_id, venue_id, category, party_size, timeframe, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		b.ID, b.UserID, b.ConversationID, b.VenueID, b.Category,
		b.PartySize, b.Timeframe, b.Notes, b.Status,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingRequest, error) {
	b := &models.BookingRequest{}
	query := `SELECT id, user_id, conversation_id, venue_id, category, party_size,
		timeframe, notes, status, created_at, updated_at
		FROM booking_requests WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.ConversationID, &b.VenueID, &b.Category,
		&b.PartySize, &b.Timeframe, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.BookingRequest, error) {
	query := `SELECT id, user_id, conversation_id, venue_id, category, party_size,
		timeframe, notes, status, created_at, updated_at
		FROM booking_requests WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.BookingRequest
	for rows.Next() {
		b := &models.BookingRequest{}
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.ConversationID, &b.VenueID, &b.Category,
			&b.PartySize, &b.Timeframe, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE booking_requests SET status = $2, updated_at = NOW() WHERE id = $1",
		id, status)
	return err
}
