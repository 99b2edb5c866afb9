package models

import (
	"context"
	"errors"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
	"kinoteka/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RatingModel struct {
	DB *pgxpool.Pool
}

// Upsert records a star rating for (movieID, ip), overwriting any previous
// one. The unique index on (movie_id, ip) makes this race-safe: concurrent
// submissions from the same client collapse to a single row, last write wins.
// Returns created=false when an existing row was overwritten.
func (m *RatingModel) Upsert(ctx context.Context, ip string, movieID, starID int64) (bool, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO ratings (ip, movie_id, star_id) VALUES ($1, $2, $3)
		ON CONFLICT (movie_id, ip) DO UPDATE SET star_id = EXCLUDED.star_id
		RETURNING (xmax = 0) AS created`,
		ip, movieID, starID,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowTo[bool])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrForeignKeyCode {
			return false, storage.ErrBrokenRef
		}
		return false, err
	}
	return created, nil
}

// GetForMovie returns the rating previously submitted from ip, if any.
func (m *RatingModel) GetForMovie(ctx context.Context, movieID int64, ip string) (*models.Rating, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT id, ip, movie_id, star_id FROM ratings WHERE movie_id = $1 AND ip = $2`,
		movieID, ip,
	)
	rating, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Rating])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// ListStars returns the immutable 1..5 reference rows used by the rating form.
func (m *RatingModel) ListStars(ctx context.Context) ([]models.RatingStar, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, value, label FROM rating_stars ORDER BY value`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.RatingStar])
}

// GetStarByValue resolves a submitted 1..5 value to its reference row.
func (m *RatingModel) GetStarByValue(ctx context.Context, value int32) (*models.RatingStar, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, value, label FROM rating_stars WHERE value = $1`, value)
	star, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.RatingStar])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &star, nil
}
