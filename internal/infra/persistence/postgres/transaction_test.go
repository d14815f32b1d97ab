package postgres

import (
	"context"
	"testing"

	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("commits and binds repositories to the transaction", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)
		childID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`SELECT pg_advisory_xact_lock`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
			return factory.NewAlertRepository().LockSubject(ctx, childID, entity.AlertKindBoundaryExit)
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("callback error rolls back and is returned as is", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)
		claimLost := errors.New("claim lost")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
			return claimLost
		})

		assert.Same(t, claimLost, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure is a transaction error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tm := NewTransactionManager(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := tm.Execute(ctx, func(repository.RepositoryFactory) error { return nil })

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	})
}
