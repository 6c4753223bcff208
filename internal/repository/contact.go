package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Abhinay9346/portfolio/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrMessageNotFound = errors.New("contact message not found")
)

type ContactRepository interface {
	Create(message *model.ContactMessage) error
	ByID(id string) (*model.ContactMessage, error)
	Recent(limit int) ([]*model.ContactMessage, error)
}

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(message *model.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO contact_messages (id, name, email, message, remote_addr, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, message.ID, message.Name, message.Email, message.Message, message.RemoteAddr, message.CreatedAt)

	return err
}

func (r *contactRepository) ByID(id string) (*model.ContactMessage, error) {
	var message model.ContactMessage
	err := r.db.Get(&message, `SELECT * FROM contact_messages WHERE id = $1`, id)

	if err == sql.ErrNoRows {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// Recent returns the newest messages first.
func (r *contactRepository) Recent(limit int) ([]*model.ContactMessage, error) {
	var messages []*model.ContactMessage
	err := r.db.Select(&messages, `
		SELECT * FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return messages, nil
}
