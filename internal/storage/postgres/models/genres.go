package models

import (
	"context"
	"errors"

	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GenreModel struct {
	DB *pgxpool.Pool
}

func (m *GenreModel) List(ctx context.Context) ([]models.Genre, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, name, url FROM genres ORDER BY name`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre])
}

func (m *GenreModel) Insert(ctx context.Context, name, url string) (*models.Genre, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO genres (name, url) VALUES ($1, $2) RETURNING id, name, url`,
		name, url,
	)
	genre, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Genre])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &genre, nil
}

func (m *GenreModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type CategoryModel struct {
	DB *pgxpool.Pool
}

func (m *CategoryModel) List(ctx context.Context) ([]models.Category, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, name, url FROM categories ORDER BY name`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
}

func (m *CategoryModel) Insert(ctx context.Context, name, url string) (*models.Category, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO categories (name, url) VALUES ($1, $2) RETURNING id, name, url`,
		name, url,
	)
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &category, nil
}

func (m *CategoryModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type ActorModel struct {
	DB *pgxpool.Pool
}

// GetByName resolves an actor page; actors are addressed by name, which acts
// as their slug.
func (m *ActorModel) GetByName(ctx context.Context, name string) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT id, name, age, image, description FROM actors WHERE name = $1`,
		name,
	)
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

func (m *ActorModel) List(ctx context.Context) ([]models.Actor, error) {
	rows, _ := m.DB.Query(ctx, `SELECT id, name, age, image, description FROM actors ORDER BY name`)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
}

func (m *ActorModel) Insert(ctx context.Context, name string, age int32, image, description string) (*models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO actors (name, age, image, description)
		VALUES ($1, $2, $3, $4) RETURNING id, name, age, image, description`,
		name, age, image, description,
	)
	actor, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Actor])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &actor, nil
}

func (m *ActorModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
