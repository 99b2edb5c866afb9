package models

import (
	"context"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewModel struct {
	DB *pgxpool.Pool
}

// Insert persists a review against a movie. parentID may reference any
// existing review; no same-movie or cycle check is performed.
func (m *ReviewModel) Insert(ctx context.Context, movieID int64, parentID *int64, name, email, text string) (*models.Review, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO reviews (movie_id, parent_id, name, email, text)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, movie_id, parent_id, name, email, text, created_at`,
		movieID, parentID, name, email, text,
	)
	review, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Review])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &review, nil
}

// GetForMovie returns all reviews of a movie in insertion order; threading is
// rebuilt by the caller from parent ids.
func (m *ReviewModel) GetForMovie(ctx context.Context, movieID int64) ([]models.Review, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT id, movie_id, parent_id, name, email, text, created_at
		FROM reviews WHERE movie_id = $1 ORDER BY id ASC`,
		movieID,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Review])
}

func (m *ReviewModel) List(ctx context.Context, f filters.Filters) ([]models.Review, int, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT count(*) OVER(), id, movie_id, parent_id, name, email, text, created_at
		FROM reviews ORDER BY id ASC LIMIT $1 OFFSET $2`,
		f.Limit(), f.Offset(),
	)
	type row struct {
		Count int
		models.Review
	}
	outputRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[row])
	if err != nil {
		return nil, 0, err
	}
	if len(outputRows) == 0 {
		return []models.Review{}, 0, nil
	}
	reviews := make([]models.Review, 0, len(outputRows))
	for _, r := range outputRows {
		reviews = append(reviews, r.Review)
	}
	return reviews, outputRows[0].Count, nil
}

func (m *ReviewModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
