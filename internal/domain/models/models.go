package models

import (
	"time"
)

// Movie is the central catalog entity. Relations are loaded separately by the
// storage layer, so they are excluded from row scanning with db:"-".
type Movie struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Tagline       string    `json:"tagline"`
	Description   string    `json:"description"`
	Poster        string    `json:"poster"` // path to the poster image
	Year          int32     `json:"year"`
	Country       string    `json:"country"`
	WorldPremiere time.Time `json:"world_premiere"`
	Budget        int64     `json:"budget"`
	FeesInUsa     int64     `json:"fees_in_usa"`
	FeesInWorld   int64     `json:"fees_in_world"`
	CategoryID    int64     `json:"category_id"`
	URL           string    `json:"url"` // unique slug
	Draft         bool      `json:"draft"`
	CreatedAt     time.Time `json:"-"`

	Category  *Category   `json:"category,omitempty" db:"-"`
	Genres    []Genre     `json:"genres,omitempty" db:"-"`
	Actors    []Actor     `json:"actors,omitempty" db:"-"`
	Directors []Actor     `json:"directors,omitempty" db:"-"`
	Shots     []MovieShot `json:"shots,omitempty" db:"-"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Actor is shared between the "actor" and "director" roles on a movie.
type Actor struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Age         int32  `json:"age"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type MovieShot struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	MovieID     int64  `json:"movie_id"`
}

// RatingStar is immutable reference data, seeded 1..5 by migration.
type RatingStar struct {
	ID    int64  `json:"id"`
	Value int32  `json:"value"`
	Label string `json:"label"`
}

// Rating holds at most one row per (movie, ip) pair, enforced by a unique
// index and upsert semantics in the storage layer.
type Rating struct {
	ID      int64  `json:"id"`
	IP      string `json:"ip"`
	MovieID int64  `json:"movie_id"`
	StarID  int64  `json:"star_id"`
}

type Review struct {
	ID        int64     `json:"id"`
	MovieID   int64     `json:"movie_id"`
	ParentID  *int64    `json:"parent_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Contact struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"-"`
}

// MovieProjection is the compact shape served by the JSON filter endpoint.
type MovieProjection struct {
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	URL     string `json:"url"`
	Poster  string `json:"poster"`
}
