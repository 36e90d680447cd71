package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"regexp"
	"strings"

	"github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService interface {
	ListContacts(ctx context.Context) ([]*models.Contact, error)
	GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	CreateContact(ctx context.Context, req *models.ContactRequest) (*models.Contact, error)
	UpdateContact(ctx context.Context, id uuid.UUID, req *models.ContactRequest) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// normalizeContact trims every field and lowercases the email before any check runs.
func normalizeContact(req *models.ContactRequest) (*models.Contact, error) {
	if req == nil {
		return nil, errors.ValidationError("Name and email are required")
	}

	contact := &models.Contact{
		Name:  utils.SanitizeText(strings.TrimSpace(req.Name)),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Phone: utils.SanitizeText(strings.TrimSpace(req.Phone)),
		Group: models.ContactGroup(strings.TrimSpace(req.Group)),
	}

	if contact.Name == "" || contact.Email == "" {
		return nil, errors.ValidationError("Name and email are required")
	}

	if !emailPattern.MatchString(contact.Email) {
		return nil, errors.ValidationError("Invalid email format")
	}

	if contact.Group != "" && !contact.Group.Valid() {
		return nil, errors.ValidationError("Invalid group").WithDetail("group must be one of Friends, Work, Family")
	}

	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]*models.Contact, error) {

	contacts, err := s.repo.ListContacts(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch contacts").WithError(err)
	}

	return contacts, nil
}

func (s *contactService) GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {

	contact, err := s.repo.GetContactByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Contact not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to fetch contact").WithError(err)
	}

	return contact, nil
}

func (s *contactService) CreateContact(ctx context.Context, req *models.ContactRequest) (*models.Contact, error) {

	contact, err := normalizeContact(req)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailAvailable(ctx, contact.Email, uuid.Nil); err != nil {
		return nil, err
	}

	contact.ID = uuid.New()

	if err := s.repo.CreateContact(ctx, contact); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already exists").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to create contact").WithError(err)
	}

	return contact, nil
}

func (s *contactService) UpdateContact(ctx context.Context, id uuid.UUID, req *models.ContactRequest) (*models.Contact, error) {

	contact, err := normalizeContact(req)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailAvailable(ctx, contact.Email, id); err != nil {
		return nil, err
	}

	contact.ID = id

	if err := s.repo.UpdateContact(ctx, contact); err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Contact not found").WithError(err)
		}
		if repository.IsUniqueViolation(err) {
			return nil, errors.DuplicateEntryError("Email already exists").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to update contact").WithError(err)
	}

	return contact, nil
}

func (s *contactService) DeleteContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {

	contact, err := s.repo.DeleteContact(ctx, id)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Contact not found").WithError(err)
		}
		return nil, errors.DatabaseError("Failed to delete contact").WithError(err)
	}

	return contact, nil
}

func (s *contactService) ensureEmailAvailable(ctx context.Context, email string, excludeID uuid.UUID) error {

	existing, err := s.repo.FindByEmail(ctx, email, excludeID)
	if err != nil {
		if stdErrors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return errors.DatabaseError("Failed to check email").WithError(err)
	}

	if existing != nil {
		return errors.DuplicateEntryError("Email already exists")
	}

	return nil
}
