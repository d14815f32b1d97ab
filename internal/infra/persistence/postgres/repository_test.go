package postgres

import (
	"context"
	"testing"
	"time"

	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestChildRepository_FindActiveBySubjectID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewChildRepository(db)
		childID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "subject_id", "full_name", "is_active", "created_at", "updated_at"}).
			AddRow(childID.String(), "tracker-7", "Ana Cruz", true, time.Now(), time.Now())
		mock.ExpectQuery(`SELECT \* FROM "children" WHERE subject_id = \$1 AND is_active = \$2`).
			WillReturnRows(rows)

		child, err := repo.FindActiveBySubjectID(ctx, "tracker-7")
		require.NoError(t, err)
		assert.Equal(t, childID, child.ID)
		assert.Equal(t, "Ana Cruz", child.FullName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewChildRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "children"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		child, err := repo.FindActiveBySubjectID(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrChildNotFound)
		assert.Nil(t, child)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSafeZoneRepository_GetActiveZone_None(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSafeZoneRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "safe_zones" WHERE is_active = \$1 ORDER BY updated_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	zone, err := repo.GetActiveZone(context.Background())
	require.NoError(t, err)
	assert.Nil(t, zone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSafeZoneRepository_GetActiveZone_RejectsBadGeometry(t *testing.T) {
	columns := []string{"id", "name", "center_lat", "center_lng", "radius_meters", "is_active", "created_at", "updated_at"}

	t.Run("valid row", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSafeZoneRepository(db)
		zoneID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "safe_zones" WHERE is_active = \$1 ORDER BY updated_at DESC`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(zoneID.String(), "Campus", 14.5995, 120.9842, 200.0, true, time.Now(), time.Now()))

		zone, err := repo.GetActiveZone(context.Background())
		require.NoError(t, err)
		assert.Equal(t, zoneID, zone.ID)
		assert.Equal(t, 200.0, zone.RadiusMeters)
	})

	t.Run("non-positive radius", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewSafeZoneRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "safe_zones"`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(uuid.New().String(), "Campus", 14.5995, 120.9842, -1.0, true, time.Now(), time.Now()))

		zone, err := repo.GetActiveZone(context.Background())
		assert.ErrorIs(t, err, entity.ErrInvalidSafeZone)
		assert.Nil(t, zone)
	})
}

func TestLocationRepository_Append(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(`INSERT INTO "location_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	record := &entity.LocationRecord{
		ChildID:        uuid.New(),
		Latitude:       14.5995,
		Longitude:      120.9842,
		InsideSafeZone: true,
		RecordedAt:     time.Now(),
		ReceivedAt:     time.Now(),
	}

	require.NoError(t, repo.Append(context.Background(), record))
	assert.Equal(t, int64(42), record.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_MostRecent_None(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "alert_events" WHERE child_id = \$1 AND kind = \$2 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	last, err := repo.MostRecent(context.Background(), uuid.New(), entity.AlertKindBoundaryExit)
	require.NoError(t, err)
	assert.Nil(t, last)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_LockSubject(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAlertRepository(db)
	childID := uuid.New()

	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs(childID.String() + ":boundary_exit").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.LockSubject(context.Background(), childID, entity.AlertKindBoundaryExit))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	outcome := entity.AlertOutcome{SMSDelivered: true, TotalSent: 2, TotalFailed: 1, SentAt: time.Now()}

	t.Run("pending alert is updated", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewAlertRepository(db)

		mock.ExpectExec(`UPDATE "alert_events" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkSent(ctx, uuid.New(), outcome))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already sent is a no-op", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewAlertRepository(db)

		mock.ExpectExec(`UPDATE "alert_events" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "alert_events"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		require.NoError(t, repo.MarkSent(ctx, uuid.New(), outcome))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing alert", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewAlertRepository(db)

		mock.ExpectExec(`UPDATE "alert_events" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "alert_events"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.MarkSent(ctx, uuid.New(), outcome)
		assert.ErrorIs(t, err, repository.ErrAlertNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeliveryLogRepository_UpdateOutcome_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDeliveryLogRepository(db)

	mock.ExpectExec(`UPDATE "delivery_logs" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateOutcome(context.Background(), uuid.New(), entity.DeliveryStatusSent, "ok")
	assert.ErrorIs(t, err, repository.ErrDeliveryLogNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipientRepository_FindByIDs_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	recipients, err := repo.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recipients)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFromAlertDomain_DeduplicatesRecipients(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	alertM := fromAlertDomain(&entity.AlertEvent{
		ChildID:      uuid.New(),
		Kind:         entity.AlertKindBoundaryExit,
		RecipientIDs: []uuid.UUID{a, b, a},
	})

	require.Len(t, alertM.Recipients, 2)
	assert.Equal(t, string(entity.AlertStatusPending), alertM.Status)
}

func TestDeviceRepository_DeactivateTokens(t *testing.T) {
	t.Run("retires every device with a rejected token", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDeviceRepository(db)

		mock.ExpectExec(`UPDATE "recipient_devices" SET "is_active"=\$1,"updated_at"=\$2 WHERE .*fcm_token IN \(\$3,\$4\) AND is_active = \$5`).
			WillReturnResult(sqlmock.NewResult(0, 3))

		retired, err := repo.DeactivateTokens(context.Background(), []string{"tok-a", "tok-b"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), retired)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no tokens skips the query", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewDeviceRepository(db)

		retired, err := repo.DeactivateTokens(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, retired)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
