package impl

import (
	"context"
	"testing"
	"time"

	"safetrack/config"
	"safetrack/internal/domain/entity"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/policy"
	"safetrack/internal/domain/repository"
	"safetrack/internal/domain/service"
	mockRepo "safetrack/internal/mocks/repository"
	mockSvc "safetrack/internal/mocks/service"
	mockUsecase "safetrack/internal/mocks/usecase"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var manila = time.FixedZone("PHT", 8*60*60)

const (
	schoolLat = 14.5995
	schoolLng = 120.9842
	// Roughly 1.1 km north of the school.
	outsideLat = 14.6095
)

type ingestionMocks struct {
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	childRepo    *mockRepo.MockChildRepository
	safeZoneRepo *mockRepo.MockSafeZoneRepository
	locationRepo *mockRepo.MockLocationRepository
	alertRepo    *mockRepo.MockAlertRepository
	txAlertRepo  *mockRepo.MockAlertRepository
	recipients   *mockUsecase.MockRecipientUsecase
	dispatcher   *mockUsecase.MockDispatchUsecase
	publisher    *mockSvc.MockEventPublisher
}

func createTestIngestionService(t *testing.T, mode string, now time.Time) (*ingestionService, *ingestionMocks) {
	m := &ingestionMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		childRepo:    mockRepo.NewMockChildRepository(t),
		safeZoneRepo: mockRepo.NewMockSafeZoneRepository(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		alertRepo:    mockRepo.NewMockAlertRepository(t),
		txAlertRepo:  mockRepo.NewMockAlertRepository(t),
		recipients:   mockUsecase.NewMockRecipientUsecase(t),
		dispatcher:   mockUsecase.NewMockDispatchUsecase(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc, ok := NewIngestionService(IngestionServiceParams{
		TxManager:    m.txManager,
		ChildRepo:    m.childRepo,
		SafeZoneRepo: m.safeZoneRepo,
		LocationRepo: m.locationRepo,
		AlertRepo:    m.alertRepo,
		Recipients:   m.recipients,
		Dispatcher:   m.dispatcher,
		Publisher:    m.publisher,
		Window:       policy.DefaultAlertingWindow(manila),
		Config: &config.Config{
			Alerting: config.AlertingConfig{Cooldown: time.Hour, DispatchMode: mode, HistoryLimit: 50},
		},
		Logger: discardLogger(),
	}).(*ingestionService)
	require.True(t, ok)

	svc.now = func() time.Time { return now }

	return svc, m
}

func testChild() *entity.Child {
	return &entity.Child{ID: uuid.New(), SubjectID: "TAG-0042", FullName: "Ana Reyes", IsActive: true}
}

func testZone() *entity.SafeZone {
	return &entity.SafeZone{ID: uuid.New(), Name: "Campus", CenterLat: schoolLat, CenterLng: schoolLng, RadiusMeters: 200, IsActive: true}
}

func ptr[T any](v T) *T { return &v }

func reportAt(subject string, lat, lng float64, at time.Time) *usecase.IngestLocationInput {
	return &usecase.IngestLocationInput{SubjectID: subject, Latitude: ptr(lat), Longitude: ptr(lng), ReportedAt: ptr(at)}
}

func expectClaim(m *ingestionMocks) {
	m.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.repoFactory)
		})
	m.repoFactory.EXPECT().NewAlertRepository().Return(m.txAlertRepo)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestIngestionService_Ingest_InsideZoneStoresWithoutAlert(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.LocationRecord) bool {
			return r.ChildID == child.ID && r.InsideSafeZone && r.RecordedAt.Equal(tuesday)
		})).
		Return(nil).Once()

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", schoolLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.True(t, result.InsideSafeZone)
	assert.False(t, result.AlertSent)
	assert.False(t, result.AlertSkipped)
}

func TestIngestionService_Ingest_OutsideDuringSchoolHoursAlerts(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()
	child := testChild()
	recipients := []*entity.Recipient{
		newRecipient("Maria", entity.RecipientRoleGuardian, "09171234567"),
		newRecipient("Principal", entity.RecipientRoleAdmin, "09181234567"),
	}

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.LocationRecord) bool { return !r.InsideSafeZone })).
		Return(nil).Once()
	m.alertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil, nil)
	m.recipients.EXPECT().Resolve(mock.Anything, child.ID).Return(recipients, nil)

	expectClaim(m)
	m.txAlertRepo.EXPECT().LockSubject(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil)
	m.txAlertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil, nil)
	m.txAlertRepo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(e *entity.AlertEvent) bool {
			return e.ChildID == child.ID &&
				e.Status == entity.AlertStatusPending &&
				e.Severity == entity.AlertSeverityWarning &&
				len(e.RecipientIDs) == 2 &&
				e.CreatedAt.Equal(tuesday)
		})).
		Return(nil)

	m.dispatcher.EXPECT().Deliver(mock.Anything, mock.AnythingOfType("*entity.AlertEvent"), recipients).
		Return(&usecase.DispatchResult{Attempted: 2, Sent: 2}, nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.False(t, result.InsideSafeZone)
	assert.True(t, result.AlertSent)
	assert.False(t, result.AlertSkipped)
	assert.Equal(t, 2, result.RecipientsCount)
	assert.Equal(t, 2, result.SMSSentCount)
	assert.False(t, result.DispatchQueued)
}

func TestIngestionService_Ingest_RecentAlertSkips(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()
	m.alertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).
		Return(&entity.AlertEvent{ID: uuid.New(), CreatedAt: tuesday.Add(-20 * time.Minute)}, nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.False(t, result.InsideSafeZone)
	assert.False(t, result.AlertSent)
	assert.True(t, result.AlertSkipped)
}

func TestIngestionService_Ingest_WeekendStoresWithoutAlert(t *testing.T) {
	saturday := time.Date(2026, 10, 17, 9, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, saturday)
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(nil).Once()

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, saturday))

	require.NoError(t, err)
	assert.False(t, result.InsideSafeZone)
	assert.False(t, result.AlertSent)
	assert.False(t, result.AlertSkipped)
}

func TestIngestionService_Ingest_UnknownSubject(t *testing.T) {
	svc, m := createTestIngestionService(t, config.DispatchModeSync, time.Now())
	ctx := context.Background()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-9999").Return(nil, repository.ErrChildNotFound)

	result, err := svc.Ingest(ctx, reportAt("TAG-9999", schoolLat, schoolLng, time.Now()))

	assert.Nil(t, result)
	assertAppErrorCode(t, err, "CHILD_NOT_FOUND")
	m.locationRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestIngestionService_Ingest_ValidationNamesMissingField(t *testing.T) {
	svc, _ := createTestIngestionService(t, config.DispatchModeSync, time.Now())

	tests := []struct {
		name    string
		input   *usecase.IngestLocationInput
		details string
	}{
		{"missing subject", &usecase.IngestLocationInput{Latitude: ptr(1.0), Longitude: ptr(1.0)}, "subject_id is required"},
		{"missing latitude", &usecase.IngestLocationInput{SubjectID: "TAG-1", Longitude: ptr(1.0)}, "latitude is required"},
		{"missing longitude", &usecase.IngestLocationInput{SubjectID: "TAG-1", Latitude: ptr(1.0)}, "longitude is required"},
		{"latitude out of range", &usecase.IngestLocationInput{SubjectID: "TAG-1", Latitude: ptr(91.0), Longitude: ptr(1.0)}, "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ingest(context.Background(), tt.input)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.details)
		})
	}
}

func TestIngestionService_Ingest_PersistFailureIsServerError(t *testing.T) {
	svc, m := createTestIngestionService(t, config.DispatchModeSync, time.Now())
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(errors.New("disk full"))

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", schoolLat, schoolLng, time.Now()))

	assert.Nil(t, result)
	assertAppErrorCode(t, err, "LOCATION_PERSIST_FAILED")
}

func TestIngestionService_Ingest_ZoneLookupFailureWritesNothing(t *testing.T) {
	svc, m := createTestIngestionService(t, config.DispatchModeSync, time.Now())
	ctx := context.Background()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(testChild(), nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(nil, errors.New("timeout"))

	_, err := svc.Ingest(ctx, reportAt("TAG-0042", schoolLat, schoolLng, time.Now()))

	assertAppErrorCode(t, err, "SAFE_ZONE_UNAVAILABLE")
	m.locationRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestIngestionService_Ingest_NoActiveZoneFailsOpen(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(testChild(), nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(nil, nil)
	m.locationRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.LocationRecord) bool { return r.InsideSafeZone })).
		Return(nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.True(t, result.InsideSafeZone)
}

func TestIngestionService_Ingest_InvalidZoneFailsOpen(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(testChild(), nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).
		Return(nil, errors.Wrap(entity.ErrInvalidSafeZone, "radius -1"))
	m.locationRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(r *entity.LocationRecord) bool { return r.InsideSafeZone })).
		Return(nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.True(t, result.InsideSafeZone)
	assert.False(t, result.AlertSent)
}

func TestIngestionService_Ingest_ReportedTimeAheadOfServerIsClamped(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)

	tests := []struct {
		name     string
		reported time.Time
		want     time.Time
	}{
		{name: "small skew is kept", reported: tuesday.Add(time.Minute), want: tuesday.Add(time.Minute)},
		{name: "days ahead uses receive time", reported: tuesday.Add(72 * time.Hour), want: tuesday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
			ctx := context.Background()

			m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(testChild(), nil)
			m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
			m.locationRepo.EXPECT().
				Append(ctx, mock.MatchedBy(func(r *entity.LocationRecord) bool {
					return r.RecordedAt.Equal(tt.want) && r.ReceivedAt.Equal(tuesday)
				})).
				Return(nil).Once()

			_, err := svc.Ingest(ctx, reportAt("TAG-0042", schoolLat, schoolLng, tt.reported))
			require.NoError(t, err)
		})
	}
}

func TestIngestionService_Ingest_LostClaimSkips(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.alertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil, nil)
	m.recipients.EXPECT().Resolve(mock.Anything, child.ID).Return(nil, nil)

	expectClaim(m)
	m.txAlertRepo.EXPECT().LockSubject(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil)
	// A concurrent request committed its alert while this one waited for the lock.
	m.txAlertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).
		Return(&entity.AlertEvent{ID: uuid.New(), CreatedAt: tuesday.Add(-time.Second)}, nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.True(t, result.AlertSkipped)
	assert.False(t, result.AlertSent)
	m.txAlertRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	m.dispatcher.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestionService_Ingest_HistoryFailureStillSucceeds(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeSync, tuesday)
	ctx := context.Background()
	child := testChild()

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.alertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).
		Return(nil, errors.New("statement timeout"))

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.False(t, result.AlertSent)
	assert.False(t, result.AlertSkipped)
}

func TestIngestionService_Ingest_AsyncModeQueuesDispatch(t *testing.T) {
	tuesday := time.Date(2026, 10, 13, 10, 0, 0, 0, manila)
	svc, m := createTestIngestionService(t, config.DispatchModeAsync, tuesday)
	ctx := context.Background()
	child := testChild()
	recipient := newRecipient("Maria", entity.RecipientRoleGuardian, "09171234567")

	m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil)
	m.safeZoneRepo.EXPECT().GetActiveZone(ctx).Return(testZone(), nil)
	m.locationRepo.EXPECT().Append(ctx, mock.Anything).Return(nil)
	m.alertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil, nil)
	m.recipients.EXPECT().Resolve(mock.Anything, child.ID).Return([]*entity.Recipient{recipient}, nil)

	expectClaim(m)
	m.txAlertRepo.EXPECT().LockSubject(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil)
	m.txAlertRepo.EXPECT().MostRecent(mock.Anything, child.ID, entity.AlertKindBoundaryExit).Return(nil, nil)
	m.txAlertRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	m.publisher.EXPECT().
		PublishAlertDispatchEvent(mock.Anything, mock.MatchedBy(func(e *service.AlertDispatchEvent) bool {
			return e.ChildID == child.ID.String() && len(e.RecipientIDs) == 1 && e.RecipientIDs[0] == recipient.ID.String()
		})).
		Return(nil)

	result, err := svc.Ingest(ctx, reportAt("TAG-0042", outsideLat, schoolLng, tuesday))

	require.NoError(t, err)
	assert.True(t, result.AlertSent)
	assert.True(t, result.DispatchQueued)
	assert.Equal(t, 1, result.RecipientsCount)
	m.dispatcher.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything, mock.Anything)
}

func TestIngestionService_LocationHistory(t *testing.T) {
	svc, m := createTestIngestionService(t, config.DispatchModeSync, time.Now())
	ctx := context.Background()
	child := testChild()
	records := []*entity.LocationRecord{{ID: 2, ChildID: child.ID}, {ID: 1, ChildID: child.ID}}

	t.Run("default limit", func(t *testing.T) {
		m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil).Once()
		m.locationRepo.EXPECT().MostRecent(ctx, child.ID, 50).Return(records, nil).Once()

		got, err := svc.LocationHistory(ctx, &usecase.LocationHistoryQuery{SubjectID: "TAG-0042"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("limit is capped", func(t *testing.T) {
		m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil).Once()
		m.locationRepo.EXPECT().MostRecent(ctx, child.ID, 500).Return(records, nil).Once()

		_, err := svc.LocationHistory(ctx, &usecase.LocationHistoryQuery{SubjectID: "TAG-0042", Limit: 10000})
		require.NoError(t, err)
	})

	t.Run("time range", func(t *testing.T) {
		from := time.Date(2026, 10, 13, 7, 0, 0, 0, manila)
		to := from.Add(10 * time.Hour)
		m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil).Once()
		m.locationRepo.EXPECT().FindBetween(ctx, child.ID, from, to).Return(records, nil).Once()

		got, err := svc.LocationHistory(ctx, &usecase.LocationHistoryQuery{SubjectID: "TAG-0042", From: &from, To: &to})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("half open range is rejected", func(t *testing.T) {
		from := time.Now()
		m.childRepo.EXPECT().FindActiveBySubjectID(ctx, "TAG-0042").Return(child, nil).Once()

		_, err := svc.LocationHistory(ctx, &usecase.LocationHistoryQuery{SubjectID: "TAG-0042", From: &from})
		assertAppErrorCode(t, err, "VALIDATION_FAILED")
	})
}
