package session

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/P3RALT/SysEstoque/internal/repository"
	"github.com/P3RALT/SysEstoque/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Repository is the durable key/value store behind the login form: one row
// per user holding the display name and e-mail, overwritten on each
// successful login. Identity is the lowercased e-mail (email_key); the
// stored name and e-mail keep exactly the casing the user typed.
type Repository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *Repository {
	return &Repository{repository: r}
}

func sessionRecord(user models.SessionUser) goqu.Record {
	return goqu.Record{
		"email_key": strings.ToLower(user.Email),
		"email":     user.Email,
		"name":      user.Name,
	}
}

func (r *Repository) Save(user models.SessionUser) error {
	query := r.repository.GoquDBWrapper.Insert("sessions").
		Rows(sessionRecord(user)).
		OnConflict(
			goqu.DoUpdate("email_key", goqu.Record{
				"email":      user.Email,
				"name":       user.Name,
				"updated_at": goqu.L("now()"),
			}),
		)

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Load returns the stored user, or (nil, nil) when none exists. Errors are
// returned for the caller to log; they must never block page init.
func (r *Repository) Load(email string) (*models.SessionUser, error) {
	var user models.SessionUser

	query := r.repository.GoquDBWrapper.
		Select("name", "email").
		From("sessions").
		Where(goqu.Ex{"email_key": strings.ToLower(email)})

	found, err := query.Executor().ScanStruct(&user)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return nil, nil
	}

	return &user, nil
}
