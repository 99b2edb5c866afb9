package models

import "kinoteka/proj/internal/storage/postgres"

type Models struct {
	Movie    *MovieModel
	Genre    *GenreModel
	Category *CategoryModel
	Actor    *ActorModel
	Rating   *RatingModel
	Review   *ReviewModel
	Contact  *ContactModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Movie:    &MovieModel{db.Conn},
		Genre:    &GenreModel{db.Conn},
		Category: &CategoryModel{db.Conn},
		Actor:    &ActorModel{db.Conn},
		Rating:   &RatingModel{db.Conn},
		Review:   &ReviewModel{db.Conn},
		Contact:  &ContactModel{db.Conn},
	}
}
