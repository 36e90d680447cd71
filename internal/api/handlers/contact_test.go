package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/shopfront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/aaravmahajanofficial/shopfront/internal/services/mocks"
	"github.com/aaravmahajanofficial/shopfront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_CreateContact(t *testing.T) {

	t.Run("Success - Created", func(t *testing.T) {
		// Arrange
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		reqBody := models.ContactRequest{Name: "Ann", Email: "Ann@Example.com", Group: "Work"}
		created := &models.Contact{ID: uuid.New(), Name: "Ann", Email: "ann@example.com", Group: models.ContactGroupWork}

		mockContactService.On("CreateContact", mock.Anything, mock.MatchedBy(func(r *models.ContactRequest) bool {
			return r.Email == "Ann@Example.com" && r.Group == "Work"
		})).Return(created, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/contacts", jsonBody(t, reqBody), nil)
		rr := httptest.NewRecorder()

		// Act
		contactHandler.CreateContact().ServeHTTP(rr, req)

		// Assert
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		assert.Equal(t, "ann@example.com", decodeData[models.Contact](t, rr).Email)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		mockContactService.On("CreateContact", mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Email already exists")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/contacts",
			jsonBody(t, models.ContactRequest{Name: "Ann", Email: "ANN@example.com"}), nil)
		rr := httptest.NewRecorder()

		// Act
		contactHandler.CreateContact().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, "Email already exists", decodeError(t, rr).Message)
	})

	t.Run("Failure - Unknown Group", func(t *testing.T) {
		// Arrange
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/contacts",
			strings.NewReader(`{"name":"Ann","email":"ann@example.com","group":"Colleagues"}`), nil)
		rr := httptest.NewRecorder()

		// Act
		contactHandler.CreateContact().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Details, "Field Group must be one of: Friends Work Family")
	})
}

func TestContactHandler_ByID(t *testing.T) {
	contactID := uuid.New()
	params := map[string]string{"id": contactID.String()}

	t.Run("GetContact_InvalidID", func(t *testing.T) {
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/", nil, map[string]string{"id": "42"})
		rr := httptest.NewRecorder()

		contactHandler.GetContact().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeInvalidID, decodeError(t, rr).Code)
		mockContactService.AssertNotCalled(t, "GetContact", mock.Anything, mock.Anything)
	})

	t.Run("GetContact_NotFound", func(t *testing.T) {
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		mockContactService.On("GetContact", mock.Anything, contactID).Return(nil, appErrors.NotFoundError("Contact not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/", nil, params)
		rr := httptest.NewRecorder()

		contactHandler.GetContact().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("UpdateContact_Success", func(t *testing.T) {
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		mockContactService.On("UpdateContact", mock.Anything, contactID, mock.AnythingOfType("*models.ContactRequest")).
			Return(&models.Contact{ID: contactID, Name: "Ann B"}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/", jsonBody(t, models.ContactRequest{Name: "Ann B", Email: "ann@example.com"}), params)
		rr := httptest.NewRecorder()

		contactHandler.UpdateContact().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Ann B", decodeData[models.Contact](t, rr).Name)
	})

	t.Run("UpdateContact_MissingEmail", func(t *testing.T) {
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPut, "/", strings.NewReader(`{"name":"Ann"}`), params)
		rr := httptest.NewRecorder()

		contactHandler.UpdateContact().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("DeleteContact_Success", func(t *testing.T) {
		mockContactService := mocks.NewContactService(t)
		contactHandler := handlers.NewContactHandler(mockContactService)

		mockContactService.On("DeleteContact", mock.Anything, contactID).Return(&models.Contact{ID: contactID}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/", nil, params)
		rr := httptest.NewRecorder()

		contactHandler.DeleteContact().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestContactHandler_ListContacts(t *testing.T) {
	mockContactService := mocks.NewContactService(t)
	contactHandler := handlers.NewContactHandler(mockContactService)

	mockContactService.On("ListContacts", mock.Anything).
		Return([]*models.Contact{{Name: "Ann"}, {Name: "Bob"}}, nil).Once()

	req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/contacts", nil, nil)
	rr := httptest.NewRecorder()

	contactHandler.ListContacts().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	contacts := decodeData[[]models.Contact](t, rr)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ann", contacts[0].Name)
}
