package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	repository "github.com/aaravmahajanofficial/shopfront/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contactCols = []string{"id", "name", "email", "phone", "contact_group", "created_at", "updated_at"}

func setupContactRepoTest(t *testing.T) (repository.ContactRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return repository.NewContactRepo(db), mock
}

func TestContactRepository(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	contactID := uuid.New()

	t.Run("ListContacts_SortedByName", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts ORDER BY name ASC`)).
			WillReturnRows(sqlmock.NewRows(contactCols).
				AddRow(uuid.New(), "Ann", "ann@x.io", "", "", now, now).
				AddRow(uuid.New(), "Bob", "bob@x.io", "555", "Work", now, now))

		// Act
		contacts, err := repo.ListContacts(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "Ann", contacts[0].Name)
		assert.Equal(t, models.ContactGroupWork, contacts[1].Group)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListContacts_Empty", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts ORDER BY name ASC`)).WillReturnRows(sqlmock.NewRows(contactCols))

		// Act
		contacts, err := repo.ListContacts(ctx)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, contacts)
		assert.Empty(t, contacts)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetContactByID_NotFound", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts WHERE id = $1`)).
			WithArgs(contactID).
			WillReturnError(sql.ErrNoRows)

		// Act
		contact, err := repo.GetContactByID(ctx, contactID)

		// Assert
		assert.Nil(t, contact)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindByEmail_ExcludesSelf", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)
		otherID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM contacts WHERE email = $1 AND id <> $2 LIMIT 1`)).
			WithArgs("ann@x.io", contactID).
			WillReturnRows(sqlmock.NewRows(contactCols).AddRow(otherID, "Ann", "ann@x.io", "", "", now, now))

		// Act
		contact, err := repo.FindByEmail(ctx, "ann@x.io", contactID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, otherID, contact.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateContact_Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)
		contact := &models.Contact{ID: contactID, Name: "Ann", Email: "ann@x.io", Group: models.ContactGroupFriends}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contacts (id, name, email, phone, contact_group, created_at, updated_at)`)).
			WithArgs(contact.ID, contact.Name, contact.Email, contact.Phone, contact.Group).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateContact(ctx, contact)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, contact.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CreateContact_UniqueViolation", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)
		contact := &models.Contact{ID: contactID, Name: "Ann", Email: "ann@x.io"}

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO contacts`)).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		// Act
		err := repo.CreateContact(ctx, contact)

		// Assert
		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateContact_NotFound", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)
		contact := &models.Contact{ID: contactID, Name: "Ann", Email: "ann@x.io"}

		mock.ExpectQuery(regexp.QuoteMeta(`UPDATE contacts SET name = $1, email = $2, phone = $3, contact_group = $4, updated_at = NOW() WHERE id = $5`)).
			WithArgs(contact.Name, contact.Email, contact.Phone, contact.Group, contact.ID).
			WillReturnError(sql.ErrNoRows)

		// Act
		err := repo.UpdateContact(ctx, contact)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteContact_Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)

		mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM contacts WHERE id = $1 RETURNING`)).
			WithArgs(contactID).
			WillReturnRows(sqlmock.NewRows(contactCols).AddRow(contactID, "Ann", "ann@x.io", "", "Family", now, now))

		// Act
		contact, err := repo.DeleteContact(ctx, contactID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, contactID, contact.ID)
		assert.Equal(t, models.ContactGroupFamily, contact.Group)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteContact_DatabaseError", func(t *testing.T) {
		// Arrange
		repo, mock := setupContactRepoTest(t)
		dbErr := errors.New("delete failed")

		mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM contacts`)).WillReturnError(dbErr)

		// Act
		contact, err := repo.DeleteContact(ctx, contactID)

		// Assert
		assert.Nil(t, contact)
		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
