package models

import (
	"context"

	"kinoteka/proj/internal/domain/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactModel struct {
	DB *pgxpool.Pool
}

func (m *ContactModel) Insert(ctx context.Context, email, message string) (*models.Contact, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO contacts (email, message) VALUES ($1, $2)
		RETURNING id, email, message, created_at`,
		email, message,
	)
	contact, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Contact])
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return &contact, nil
}
