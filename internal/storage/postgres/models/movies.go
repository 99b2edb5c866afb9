package models

import (
	"context"
	"errors"
	"time"

	"kinoteka/proj/internal/domain/filters"
	"kinoteka/proj/internal/domain/models"
	"kinoteka/proj/internal/storage"
	"kinoteka/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

const movieColumns = `id, title, tagline, description, poster, year, country,
	world_premiere, budget, fees_in_usa, fees_in_world, category_id, url, draft, created_at`

type countedMovieRow struct {
	Count int
	models.Movie
}

func collectMoviesPage(rows pgx.Rows) ([]models.Movie, int, error) {
	outputRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[countedMovieRow])
	if err != nil {
		return nil, 0, err
	}
	if len(outputRows) == 0 {
		return []models.Movie{}, 0, nil
	}
	movies := make([]models.Movie, 0, len(outputRows))
	for _, row := range outputRows {
		movies = append(movies, row.Movie)
	}
	return movies, outputRows[0].Count, nil
}

// ListPublished returns non-draft movies in insertion order, one page at a time.
func (m *MovieModel) ListPublished(ctx context.Context, f filters.Filters) ([]models.Movie, int, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT count(*) OVER(), `+movieColumns+`
		FROM movies WHERE draft = false
		ORDER BY id ASC LIMIT $1 OFFSET $2`,
		f.Limit(), f.Offset(),
	)
	return collectMoviesPage(rows)
}

// FilterByYearsGenres returns the distinct union of movies whose year is in
// years or whose genre set intersects genreIDs. Empty slices match nothing.
// Draft movies are deliberately not excluded here.
func (m *MovieModel) FilterByYearsGenres(ctx context.Context, years []int32, genreIDs []int64, f filters.Filters) ([]models.Movie, int, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT count(*) OVER(), `+movieColumns+`
		FROM movies
		WHERE year = ANY($1)
		OR EXISTS (
			SELECT 1 FROM movie_genres mg
			WHERE mg.movie_id = movies.id AND mg.genre_id = ANY($2)
		)
		ORDER BY id ASC LIMIT $3 OFFSET $4`,
		years, genreIDs, f.Limit(), f.Offset(),
	)
	return collectMoviesPage(rows)
}

// SearchByTitle performs a case-insensitive substring match against titles.
func (m *MovieModel) SearchByTitle(ctx context.Context, query string, f filters.Filters) ([]models.Movie, int, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT count(*) OVER(), `+movieColumns+`
		FROM movies WHERE title ILIKE '%' || $1 || '%'
		ORDER BY id ASC LIMIT $2 OFFSET $3`,
		query, f.Limit(), f.Offset(),
	)
	return collectMoviesPage(rows)
}

// GetPublishedBySlug loads a non-draft movie with its relations for the
// detail page.
func (m *MovieModel) GetPublishedBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT `+movieColumns+` FROM movies WHERE url = $1 AND draft = false`,
		slug,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	if err := m.loadRelations(ctx, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) Get(ctx context.Context, id int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = $1`, id)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) loadRelations(ctx context.Context, movie *models.Movie) error {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT c.id, c.name, c.url FROM categories c WHERE c.id = $1`,
		movie.CategoryID,
	)
	category, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	if err == nil {
		movie.Category = &category
	}
	rows, _ = m.DB.Query(
		ctx,
		`SELECT g.id, g.name, g.url FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.id
		WHERE mg.movie_id = $1 ORDER BY g.name`,
		movie.ID,
	)
	if movie.Genres, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.Genre]); err != nil {
		return err
	}
	if movie.Actors, err = m.listCrew(ctx, movie.ID, "actor"); err != nil {
		return err
	}
	if movie.Directors, err = m.listCrew(ctx, movie.ID, "director"); err != nil {
		return err
	}
	rows, _ = m.DB.Query(
		ctx,
		`SELECT id, title, description, image, movie_id FROM movie_shots
		WHERE movie_id = $1 ORDER BY id`,
		movie.ID,
	)
	movie.Shots, err = pgx.CollectRows(rows, pgx.RowToStructByName[models.MovieShot])
	return err
}

func (m *MovieModel) listCrew(ctx context.Context, movieID int64, role string) ([]models.Actor, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT a.id, a.name, a.age, a.image, a.description FROM actors a
		JOIN movie_actors ma ON ma.actor_id = a.id
		WHERE ma.movie_id = $1 AND ma.role = $2 ORDER BY a.name`,
		movieID, role,
	)
	return pgx.CollectRows(rows, pgx.RowToStructByName[models.Actor])
}

// ListYears returns the distinct release years of non-draft movies, used for
// the filter sidebar context.
func (m *MovieModel) ListYears(ctx context.Context) ([]int32, error) {
	rows, _ := m.DB.Query(ctx, `SELECT DISTINCT year FROM movies WHERE draft = false ORDER BY year`)
	return pgx.CollectRows(rows, pgx.RowTo[int32])
}

type MovieParams struct {
	Title         string
	Tagline       string
	Description   string
	Poster        string
	Year          int32
	Country       string
	WorldPremiere time.Time
	Budget        int64
	FeesInUsa     int64
	FeesInWorld   int64
	CategoryID    int64
	URL           string
	Draft         bool
	GenreIDs      []int64
	ActorIDs      []int64
	DirectorIDs   []int64
}

// Insert creates a movie and its genre/crew links in one transaction.
func (m *MovieModel) Insert(ctx context.Context, p MovieParams) (*models.Movie, error) {
	tx, err := m.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	rows, _ := tx.Query(
		ctx,
		`INSERT INTO movies (title, tagline, description, poster, year, country,
			world_premiere, budget, fees_in_usa, fees_in_world, category_id, url, draft)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+movieColumns,
		p.Title, p.Tagline, p.Description, p.Poster, p.Year, p.Country,
		p.WorldPremiere, p.Budget, p.FeesInUsa, p.FeesInWorld, p.CategoryID, p.URL, p.Draft,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	if err := m.linkRelations(ctx, tx, movie.ID, p); err != nil {
		return nil, translateWriteErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update rewrites the movie row and replaces its genre/crew links.
func (m *MovieModel) Update(ctx context.Context, id int64, p MovieParams) (*models.Movie, error) {
	tx, err := m.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	rows, _ := tx.Query(
		ctx,
		`UPDATE movies SET title = $1, tagline = $2, description = $3, poster = $4,
			year = $5, country = $6, world_premiere = $7, budget = $8,
			fees_in_usa = $9, fees_in_world = $10, category_id = $11, url = $12, draft = $13
		WHERE id = $14 RETURNING `+movieColumns,
		p.Title, p.Tagline, p.Description, p.Poster, p.Year, p.Country,
		p.WorldPremiere, p.Budget, p.FeesInUsa, p.FeesInWorld, p.CategoryID, p.URL, p.Draft,
		id,
	)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, translateWriteErr(err)
	}
	for _, table := range []string{"movie_genres", "movie_actors"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE movie_id = $1`, id); err != nil {
			return nil, err
		}
	}
	if err := m.linkRelations(ctx, tx, id, p); err != nil {
		return nil, translateWriteErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (m *MovieModel) linkRelations(ctx context.Context, tx pgx.Tx, movieID int64, p MovieParams) error {
	for _, genreID := range p.GenreIDs {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO movie_genres (movie_id, genre_id) VALUES ($1, $2)`,
			movieID, genreID,
		); err != nil {
			return err
		}
	}
	crew := map[string][]int64{"actor": p.ActorIDs, "director": p.DirectorIDs}
	for role, actorIDs := range crew {
		for _, actorID := range actorIDs {
			if _, err := tx.Exec(
				ctx,
				`INSERT INTO movie_actors (movie_id, actor_id, role) VALUES ($1, $2, $3)`,
				movieID, actorID, role,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *MovieModel) Delete(ctx context.Context, id int64) error {
	status, err := m.DB.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if status.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// InsertShot attaches a still frame to a movie.
func (m *MovieModel) InsertShot(ctx context.Context, movieID int64, title, description, image string) (*models.MovieShot, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO movie_shots (title, description, image, movie_id)
		VALUES ($1, $2, $3, $4) RETURNING id, title, description, image, movie_id`,
		title, description, image, movieID,
	)
	shot, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.MovieShot])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &shot, nil
}

func translateWriteErr(err error) error {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case postgres.ErrConflictCode:
			return storage.ErrConflict
		case postgres.ErrForeignKeyCode:
			return storage.ErrBrokenRef
		}
	}
	return err
}
