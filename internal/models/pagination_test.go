package models_test

import (
	"math"
	"testing"

	"github.com/aaravmahajanofficial/shopfront/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewPageRequest(t *testing.T) {
	tests := []struct {
		name          string
		page, limit   int
		expectedPage  int
		expectedLimit int
		expectedSkip  int
	}{
		{"Defaults", 0, 0, 1, 8, 0},
		{"Negative Values", -3, -1, 1, 8, 0},
		{"Third Page", 3, 8, 3, 8, 16},
		{"Limit Capped", 2, 500, 2, models.MaxLimit, models.MaxLimit},
		{"Huge Page Clamped", math.MaxInt/8 + 2, 8, models.MaxPage, 8, (models.MaxPage - 1) * 8},
		{"Max Int Page At Max Limit", math.MaxInt, models.MaxLimit, models.MaxPage, models.MaxLimit, (models.MaxPage - 1) * models.MaxLimit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := models.NewPageRequest(tc.page, tc.limit)

			assert.Equal(t, tc.expectedPage, p.Page)
			assert.Equal(t, tc.expectedLimit, p.Limit)
			assert.Equal(t, tc.expectedSkip, p.Offset())
		})
	}
}

func TestContactGroupValid(t *testing.T) {
	assert.True(t, models.ContactGroupWork.Valid())
	assert.True(t, models.ContactGroup("Family").Valid())
	assert.False(t, models.ContactGroup("family").Valid())
	assert.False(t, models.ContactGroup("").Valid())
}

func TestCartLineInputToLine(t *testing.T) {
	price := 12.5
	in := &models.CartLineInput{ProductID: uuid.New(), Name: "Mug", Price: &price, Quantity: 2, Image: "mug.png"}

	line := in.ToLine()

	assert.Equal(t, in.ProductID, line.ProductID)
	assert.Equal(t, 12.5, line.Price)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "mug.png", line.Image)
}
