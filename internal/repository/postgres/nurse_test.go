package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurselink/booking-api/internal/model"
	"github.com/nurselink/booking-api/internal/repository"
)

func TestNurseCreateDuplicateUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNurseRepository(db)

	mock.ExpectExec("INSERT INTO nurses").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	err := repo.Create(context.Background(), &model.Nurse{
		Username:     "nurse_joy",
		PasswordHash: "hash",
		IsAvailable:  true,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNurseGetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNurseRepository(db)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM nurses").
		WithArgs("nurse_joy").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "is_available"}).
			AddRow(id.String(), "nurse_joy", "hash", true))

	nurse, err := repo.GetByUsername(context.Background(), "nurse_joy")
	require.NoError(t, err)
	assert.Equal(t, id, nurse.ID)
	assert.True(t, nurse.IsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNurseGetByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNurseRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM nurses").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNurseList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNurseRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM nurses").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "is_available"}).
			AddRow(uuid.New().String(), "nurse_joy", "hash", true).
			AddRow(uuid.New().String(), "nurse_ann", "hash", false))

	nurses, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, nurses, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
