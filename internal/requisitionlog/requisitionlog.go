package requisitionlog

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/P3RALT/SysEstoque/internal/repository"
	"github.com/P3RALT/SysEstoque/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// Entry is one recorded dispatch outcome.
type Entry struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserName  string          `json:"user_name" db:"user_name"`
	UserEmail string          `json:"user_email" db:"user_email"`
	Outcome   string          `json:"outcome" db:"outcome"`
	Payload   json.RawMessage `json:"payload" db:"payload"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type Repository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *Repository {
	return &Repository{repository: r}
}

func (r *Repository) PersistEntry(outcome string, req models.Requisition) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal requisition payload: %w", err)
	}

	query := r.repository.GoquDBWrapper.Insert("requisition_log").
		Rows(goqu.Record{
			"id":         uuid.New(),
			"user_name":  req.User.Name,
			"user_email": req.User.Email,
			"outcome":    outcome,
			"payload":    payload,
			"created_at": req.CreatedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert requisition log: %w", err)
	}

	return nil
}

func (r *Repository) GetEntriesByUser(email string) ([]Entry, error) {
	var entries []Entry

	query := r.repository.GoquDBWrapper.
		Select("id", "user_name", "user_email", "outcome", "payload", "created_at").
		From("requisition_log").
		Where(goqu.Ex{"user_email": email}).
		Order(goqu.C("created_at").Desc())

	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("error executing SQL statement: %w", err)
	}

	return entries, nil
}

// RequisitionLog records outcomes without ever failing the caller.
type RequisitionLog struct {
	r *Repository
}

func NewRequisitionLog(r *Repository) *RequisitionLog {
	return &RequisitionLog{r: r}
}

func (l *RequisitionLog) Log(outcome string, req models.Requisition) {
	if err := l.r.PersistEntry(outcome, req); err != nil {
		log.Printf("Unable to create requisition log entry for %s: %v", req.User.Email, err)
		return
	}

	log.Printf("Created requisition log entry for %s (%s)", req.User.Email, outcome)
}
