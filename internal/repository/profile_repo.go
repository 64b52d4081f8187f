package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursecatalog/internal/model"
)

type ProfileRepository interface {
	GetProfileByID(ctx context.Context, userID string) (*model.Profile, error)
	// GetProfilesByIDs resolves every profile in userIDs with a single
	// query; ids without a profile row are simply absent from the result.
	GetProfilesByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error)
	UpsertProfile(ctx context.Context, p *model.Profile) error
}

type profileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetProfileByID(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	query := `SELECT id, username, created_at, updated_at FROM profiles WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)
	if err := row.Scan(&p.UserID, &p.Username, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) GetProfilesByIDs(ctx context.Context, userIDs []string) ([]model.Profile, error) {
	if len(userIDs) == 0 {
		return []model.Profile{}, nil
	}

	// pgx accepts a Go slice for ANY directly, no placeholder expansion needed.
	query := `SELECT id, username, created_at, updated_at FROM profiles WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []model.Profile
	for rows.Next() {
		var p model.Profile
		if err := rows.Scan(&p.UserID, &p.Username, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	if len(profiles) == 0 {
		return []model.Profile{}, nil
	}

	return profiles, nil
}

// UpsertProfile creates the caller's profile row or replaces its username.
func (r *profileRepo) UpsertProfile(ctx context.Context, p *model.Profile) error {
	query := `
		INSERT INTO profiles (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, updated_at = NOW()
		RETURNING id, username, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, p.UserID, p.Username).
		Scan(&p.UserID, &p.Username, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
