package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/aaravmahajanofficial/shopfront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Count int    `json:"count" validate:"min=1"`
}

func TestParseAndValidate(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name           string
		body           string
		expectedOK     bool
		expectedStatus int
		expectedCode   string
	}{
		{"Success", `{"email":"a@b.co","count":2}`, true, http.StatusOK, ""},
		{"Empty Body", ``, false, http.StatusBadRequest, appErrors.ErrCodeBadRequest},
		{"Malformed JSON", `{"email":`, false, http.StatusBadRequest, appErrors.ErrCodeBadRequest},
		{"Validation Failure", `{"email":"nope","count":0}`, false, http.StatusBadRequest, appErrors.ErrCodeValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			var dest sampleRequest
			ok := utils.ParseAndValidate(req, rr, &dest, validate)

			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedStatus, rr.Code)

			if !tc.expectedOK {
				var resp response.APIResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tc.expectedCode, resp.Error.Code)
			}
		})
	}

	t.Run("Validation Details Listed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":0}`))
		rr := httptest.NewRecorder()

		var dest sampleRequest
		require.False(t, utils.ParseAndValidate(req, rr, &dest, validate))

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error.Details, "Field Email is required")
		assert.Contains(t, resp.Error.Details, "Field Count must be at least 1")
	})
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contacts/"+id.String(), nil)
		req.SetPathValue("id", id.String())

		got, err := utils.ParseID(req, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("Failure - Malformed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contacts/abc", nil)
		req.SetPathValue("id", "abc")

		_, err := utils.ParseID(req, "id")
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeInvalidID, appErr.Code)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("Failure - Missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/contacts/", nil)

		_, err := utils.ParseID(req, "id")
		assert.Error(t, err)
	})
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Blue Mug", utils.SanitizeText("  Blue Mug  "))
	assert.Equal(t, "Tom & Jerry", utils.SanitizeText("Tom & Jerry"))
	assert.Equal(t, "hello", utils.SanitizeText("<b>hello</b><script>alert(1)</script>"))
}
