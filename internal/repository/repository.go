package repository

import (
	"database/sql"

	"github.com/doug-martin/goqu/v9"
)

// Repository wraps the shared database handle with the goqu query builder.
type Repository struct {
	DB            *sql.DB
	GoquDBWrapper *goqu.Database
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DB:            db,
		GoquDBWrapper: goqu.New("postgres", db),
	}
}
