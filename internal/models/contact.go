package models

import (
	"time"

	"github.com/google/uuid"
)

type ContactGroup string

const (
	ContactGroupFriends ContactGroup = "Friends"
	ContactGroupWork    ContactGroup = "Work"
	ContactGroupFamily  ContactGroup = "Family"
)

func (g ContactGroup) Valid() bool {
	switch g {
	case ContactGroupFriends, ContactGroupWork, ContactGroupFamily:
		return true
	}

	return false
}

type Contact struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Group     ContactGroup `json:"group,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ContactRequest is used for both create and update; update replaces every field.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone,omitempty"`
	Group string `json:"group,omitempty" validate:"omitempty,oneof=Friends Work Family"`
}
