package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	service "github.com/aaravmahajanofficial/shopfront/internal/services"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/aaravmahajanofficial/shopfront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ContactHandler struct {
	contactService service.ContactService
	validator      *validator.Validate
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService, validator: validator.New()}
}

// ListContacts godoc
//
//	@Summary	List contacts
//	@Tags		Contacts
//	@Produce	json
//	@Success	200	{array}		models.Contact			"Contacts sorted by name"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/contacts [get]
func (h *ContactHandler) ListContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		contacts, err := h.contactService.ListContacts(r.Context())
		if err != nil {
			logger.Error("Failed to list contacts", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, contacts)
	}
}

// CreateContact godoc
//
//	@Summary		Create a contact
//	@Description	The email is stored trimmed and lowercased and must be unique.
//	@Tags			Contacts
//	@Accept			json
//	@Produce		json
//	@Param			contact	body		models.ContactRequest	true	"Contact details"
//	@Success		201		{object}	models.Contact			"Successfully created contact"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		409		{object}	response.ErrorResponse	"Email already exists"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/contacts [post]
func (h *ContactHandler) CreateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create contact input")
			return
		}

		contact, err := h.contactService.CreateContact(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create contact", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Contact created successfully", slog.String("contactId", contact.ID.String()))
		response.Success(w, http.StatusCreated, contact)
	}
}

// GetContact godoc
//
//	@Summary	Get a contact by ID
//	@Tags		Contacts
//	@Produce	json
//	@Param		id	path		string					true	"Contact ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Contact			"Successfully retrieved contact"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid contact ID format"
//	@Failure	404	{object}	response.ErrorResponse	"Contact not found"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/contacts/{id} [get]
func (h *ContactHandler) GetContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid contact id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		contact, err := h.contactService.GetContact(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get contact", slog.String("contactId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, contact)
	}
}

// UpdateContact godoc
//
//	@Summary	Update a contact
//	@Tags		Contacts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Contact ID (UUID)"	Format(uuid)
//	@Param		contact	body		models.ContactRequest	true	"Replacement contact details"
//	@Success	200		{object}	models.Contact			"Successfully updated contact"
//	@Failure	400		{object}	response.ErrorResponse	"Validation error or invalid ID"
//	@Failure	404		{object}	response.ErrorResponse	"Contact not found"
//	@Failure	409		{object}	response.ErrorResponse	"Email already exists"
//	@Failure	500		{object}	response.ErrorResponse	"Internal server error"
//	@Router		/contacts/{id} [put]
func (h *ContactHandler) UpdateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid contact id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("contactId", id.String()))

		var req models.ContactRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update contact input")
			return
		}

		contact, err := h.contactService.UpdateContact(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update contact", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Contact updated successfully")
		response.Success(w, http.StatusOK, contact)
	}
}

// DeleteContact godoc
//
//	@Summary	Delete a contact
//	@Tags		Contacts
//	@Produce	json
//	@Param		id	path		string					true	"Contact ID (UUID)"	Format(uuid)
//	@Success	200	{object}	models.Contact			"The deleted contact"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid contact ID format"
//	@Failure	404	{object}	response.ErrorResponse	"Contact not found"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/contacts/{id} [delete]
func (h *ContactHandler) DeleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid contact id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		contact, err := h.contactService.DeleteContact(r.Context(), id)
		if err != nil {
			logger.Error("Failed to delete contact", slog.String("contactId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Contact deleted successfully", slog.String("contactId", id.String()))
		response.Success(w, http.StatusOK, contact)
	}
}
