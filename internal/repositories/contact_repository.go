package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/google/uuid"
)

type ContactRepository interface {
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	// FindByEmail ignores the contact identified by excludeID. Pass uuid.Nil to search all.
	FindByEmail(ctx context.Context, email string, excludeID uuid.UUID) (*models.Contact, error)
	CreateContact(ctx context.Context, contact *models.Contact) error
	UpdateContact(ctx context.Context, contact *models.Contact) error
	DeleteContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
}

type contactRepository struct {
	DB *sql.DB
}

const contactColumns = `id, name, email, phone, contact_group, created_at, updated_at`

func NewContactRepo(db *sql.DB) ContactRepository {
	return &contactRepository{DB: db}
}

func scanContact(row rowScanner) (*models.Contact, error) {
	contact := &models.Contact{}
	err := row.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Phone, &contact.Group, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	defer rows.Close()

	contacts := []*models.Contact{}

	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}

		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) GetContactByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	contact, err := scanContact(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string, excludeID uuid.UUID) (*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + contactColumns + ` FROM contacts WHERE email = $1 AND id <> $2 LIMIT 1`

	contact, err := scanContact(r.DB.QueryRowContext(dbCtx, query, email, excludeID))
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return contact, nil
}

func (r *contactRepository) CreateContact(ctx context.Context, contact *models.Contact) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO contacts (id, name, email, phone, contact_group, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, contact.ID, contact.Name, contact.Email, contact.Phone, contact.Group).Scan(&contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact *models.Contact) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE contacts SET name = $1, email = $2, phone = $3, contact_group = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, contact.Name, contact.Email, contact.Phone, contact.Group, contact.ID).Scan(&contact.CreatedAt, &contact.UpdatedAt)
}

func (r *contactRepository) DeleteContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM contacts WHERE id = $1 RETURNING ` + contactColumns

	contact, err := scanContact(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("deleting contact: %w", err)
	}

	return contact, nil
}
