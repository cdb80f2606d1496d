package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gliitz-backend/internal/models"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	u.ID = uuid.New()
	if u.Plan == "" {
		u.Plan = "member"
	}
	if u.AuthProvider == "" {
		u.AuthProvider = "email"
	}

	query := `INSERT INTO users (id, email, password_hash, full_name, phone, plan, auth_provider, google_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FullName, u.Phone, u.Plan, u.AuthProvider, u.GoogleID,
	).Scan(&u.CreatedAt)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := &models.User{}
	query := `SELECT id, email, password_hash, full_name, phone, avatar_url,
		is_active, plan, auth_provider, google_id, created_at, last_login_at
		FROM users WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.AvatarURL,
		&u.IsActive, &u.Plan, &u.AuthProvider, &u.GoogleID, &u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT id, email, password_hash, full_name, phone, avatar_url,
		is_active, plan, auth_provider, google_id, created_at, last_login_at
		FROM users WHERE LOWER(email) = LOWER($1)`

	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.AvatarURL,
		&u.IsActive, &u.Plan, &u.AuthProvider, &u.GoogleID, &u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, req models.UpdateProfileRequest) error {
	query := `UPDATE users SET
		full_name = COALESCE($2, full_name),
		phone = COALESCE($3, phone),
		avatar_url = COALESCE($4, avatar_url)
		WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, req.FullName, req.Phone, req.AvatarURL)
	return err
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET password_hash = $2 WHERE id = $1", id, passwordHash)
	return err
}

func (r *UserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID) {
	r.pool.Exec(ctx, "UPDATE users SET last_login_at = NOW() WHERE id = $1", id)
}

func (r *UserRepo) GetByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	u := &models.User{}
	query := `SELECT id, email, password_hash, full_name, phone, avatar_url,
		is_active, plan, auth_provider, google_id, created_at, last_login_at
		FROM users WHERE google_id = $1`

	err := r.pool.QueryRow(ctx, query, googleID).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &u.AvatarURL,
		&u.IsActive, &u.Plan, &u.AuthProvider, &u.GoogleID, &u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) error {
	_, err := r.pool.Exec(ctx, "UPDATE users SET google_id = $2 WHERE id = $1", id, googleID)
	return err
}

func (r *UserRepo) CreatePreferences(ctx context.Context, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO user_preferences (user_id, language) VALUES ($1, 'fr')
		 ON CONFLICT (user_id) DO NOTHING`, userID)
	return err
}

func (r *UserRepo) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.Preferences, error) {
	p := &models.Preferences{}
	query := `SELECT user_id, language, default_party_size, favorite_categories, updated_at
		FROM user_preferences WHERE user_id = $1`

	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Language, &p.DefaultPartySize, &p.FavoriteCategories, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *UserRepo) UpdatePreferences(ctx context.Context, p *models.Preferences) error {
	query := `INSERT INTO user_preferences (user_id, language, default_party_size, favorite_categories, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			language = EXCLUDED.language,
			default_party_size = EXCLUDED.default_party_size,
			favorite_categories = EXCLUDED.favorite_categories,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, p.UserID, p.Language, p.DefaultPartySize, p.FavoriteCategories)
	return err
}
