package impl

import (
	"context"
	"testing"
	"time"

	"safetrack/config"
	"safetrack/internal/domain/entity"
	"safetrack/internal/domain/service"
	mockRepo "safetrack/internal/mocks/repository"
	mockSvc "safetrack/internal/mocks/service"
	"safetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchMocks struct {
	alertRepo       *mockRepo.MockAlertRepository
	recipientRepo   *mockRepo.MockRecipientRepository
	deliveryLogRepo *mockRepo.MockDeliveryLogRepository
	deviceRepo      *mockRepo.MockDeviceRepository
	smsGateway      *mockSvc.MockSMSGateway
	pushSvc         *mockSvc.MockNotificationService
}

func createTestDispatchService(t *testing.T, withPush bool) (*dispatchService, *dispatchMocks) {
	m := &dispatchMocks{
		alertRepo:       mockRepo.NewMockAlertRepository(t),
		recipientRepo:   mockRepo.NewMockRecipientRepository(t),
		deliveryLogRepo: mockRepo.NewMockDeliveryLogRepository(t),
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		smsGateway:      mockSvc.NewMockSMSGateway(t),
	}

	params := DispatchServiceParams{
		AlertRepo:       m.alertRepo,
		RecipientRepo:   m.recipientRepo,
		DeliveryLogRepo: m.deliveryLogRepo,
		DeviceRepo:      m.deviceRepo,
		SMSGateway:      m.smsGateway,
		Config: &config.Config{
			Alerting: config.AlertingConfig{DispatchConcurrency: 2},
			SMS:      config.SMSConfig{Timeout: time.Second},
		},
		Logger: discardLogger(),
	}
	if withPush {
		m.pushSvc = mockSvc.NewMockNotificationService(t)
		params.PushService = m.pushSvc
	}

	svc, ok := NewDispatchService(params).(*dispatchService)
	require.True(t, ok)

	return svc, m
}

func newPendingAlert() *entity.AlertEvent {
	return &entity.AlertEvent{
		ID:       uuid.New(),
		ChildID:  uuid.New(),
		Kind:     entity.AlertKindBoundaryExit,
		Severity: entity.AlertSeverityWarning,
		Message:  "SAFETY ALERT: Ana has left the school safe zone",
		Status:   entity.AlertStatusPending,
	}
}

func TestDispatchService_Deliver_PartialFailureStillMarksSent(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	ctx := context.Background()
	event := newPendingAlert()

	first := newRecipient("Maria", entity.RecipientRoleGuardian, "+63 917 123 4567")
	second := newRecipient("Jose", entity.RecipientRoleGuardian, "0918-123-4567")
	third := newRecipient("Adviser", entity.RecipientRoleStaff, "9191234567")
	noPhone := newRecipient("Registrar", entity.RecipientRoleAdmin, "")

	m.deliveryLogRepo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(e *entity.DeliveryLogEntry) bool {
			return e.Status == entity.DeliveryStatusPending && e.Channel == entity.DeliveryChannelSMS && e.AlertEventID == event.ID
		})).
		Return(nil).Times(3)

	m.smsGateway.EXPECT().Send(mock.Anything, "639171234567", event.Message).
		Return(&service.SMSSendResult{MessageID: "1", Status: "Pending", ProviderResponse: `[{"message_id":1}]`}, nil)
	m.smsGateway.EXPECT().Send(mock.Anything, "639181234567", event.Message).
		Return(&service.SMSSendResult{MessageID: "2", Status: "Pending", ProviderResponse: `[{"message_id":2}]`}, nil)
	m.smsGateway.EXPECT().Send(mock.Anything, "639191234567", event.Message).
		Return(nil, errors.New("sms gateway returned HTTP 500: upstream down"))

	m.deliveryLogRepo.EXPECT().UpdateOutcome(mock.Anything, mock.Anything, entity.DeliveryStatusSent, mock.Anything).
		Return(nil).Times(2)
	m.deliveryLogRepo.EXPECT().
		UpdateOutcome(mock.Anything, mock.Anything, entity.DeliveryStatusFailed, mock.MatchedBy(func(resp string) bool {
			return resp == "sms gateway returned HTTP 500: upstream down"
		})).
		Return(nil).Once()

	m.alertRepo.EXPECT().
		MarkSent(mock.Anything, event.ID, mock.MatchedBy(func(o entity.AlertOutcome) bool {
			return o.SMSDelivered && !o.PushDelivered && o.TotalSent == 2 && o.TotalFailed == 1
		})).
		Return(nil)

	result, err := svc.Deliver(ctx, event, []*entity.Recipient{first, second, third, noPhone})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Attempted)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Skipped)
}

func TestDispatchService_Dispatch_UnparseablePhoneIsLoggedWithoutSending(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	event := newPendingAlert()
	recipient := newRecipient("Lolo", entity.RecipientRoleGuardian, "12345")

	m.deliveryLogRepo.EXPECT().
		Insert(mock.Anything, mock.MatchedBy(func(e *entity.DeliveryLogEntry) bool {
			return e.Status == entity.DeliveryStatusFailed && e.Destination == "12345" && e.ProviderResponse != ""
		})).
		Return(nil).Once()

	result, err := svc.Dispatch(context.Background(), event, []*entity.Recipient{recipient})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Attempted)
	assert.Equal(t, 1, result.Failed)
	m.smsGateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_LogWriteFailureDoesNotStopSend(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	event := newPendingAlert()
	recipient := newRecipient("Maria", entity.RecipientRoleGuardian, "09171234567")

	m.deliveryLogRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(errors.New("db down"))
	m.smsGateway.EXPECT().Send(mock.Anything, "639171234567", event.Message).
		Return(&service.SMSSendResult{Status: "Queued"}, nil)

	result, err := svc.Dispatch(context.Background(), event, []*entity.Recipient{recipient})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	m.deliveryLogRepo.AssertNotCalled(t, "UpdateOutcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchService_Dispatch_NilEvent(t *testing.T) {
	svc, _ := createTestDispatchService(t, false)

	_, err := svc.Dispatch(context.Background(), nil, nil)

	assert.ErrorIs(t, err, ErrNilAlertEvent)
}

func TestDispatchService_Dispatch_PushDeactivatesInvalidTokens(t *testing.T) {
	svc, m := createTestDispatchService(t, true)
	event := newPendingAlert()
	recipient := newRecipient("Maria", entity.RecipientRoleGuardian, "")

	good := &entity.RecipientDevice{ID: uuid.New(), RecipientID: recipient.ID, FCMToken: "token-good", DeviceID: "pixel", IsActive: true}
	bad := &entity.RecipientDevice{ID: uuid.New(), RecipientID: recipient.ID, FCMToken: "token-bad", DeviceID: "old-phone", IsActive: true}

	m.deviceRepo.EXPECT().FindActiveByRecipients(mock.Anything, []uuid.UUID{recipient.ID}).
		Return([]*entity.RecipientDevice{good, bad}, nil)
	m.pushSvc.EXPECT().
		SendAlert(mock.Anything, []string{"token-good", "token-bad"}, mock.MatchedBy(func(alert *service.PushAlert) bool {
			return alert.Title == "Safe zone alert" && alert.Body == event.Message && alert.Urgent
		})).
		Return(&service.PushBatchResult{Sent: 1, Failed: 1, InvalidTokens: []string{"token-bad"}}, nil)
	m.deliveryLogRepo.EXPECT().
		BatchInsert(mock.Anything, mock.MatchedBy(func(entries []*entity.DeliveryLogEntry) bool {
			if len(entries) != 2 {
				return false
			}

			return entries[0].Status == entity.DeliveryStatusSent &&
				entries[1].Status == entity.DeliveryStatusFailed &&
				entries[1].Channel == entity.DeliveryChannelPush
		})).
		Return(nil)
	m.deviceRepo.EXPECT().DeactivateTokens(mock.Anything, []string{"token-bad"}).Return(int64(1), nil)

	result, err := svc.Dispatch(context.Background(), event, []*entity.Recipient{recipient})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.PushSent)
	assert.Equal(t, 1, result.PushFailed)
}

func TestDispatchService_DeliverStored_SkipsSentAlert(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	event := newPendingAlert()
	event.Status = entity.AlertStatusSent

	m.alertRepo.EXPECT().FindByID(mock.Anything, event.ID).Return(event, nil)

	result, err := svc.DeliverStored(context.Background(), event.ID)

	require.NoError(t, err)
	assert.Zero(t, result.Attempted)
	m.recipientRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
}

func TestDispatchService_DeliverStored_LoadsRecipients(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	event := newPendingAlert()
	recipient := newRecipient("Maria", entity.RecipientRoleGuardian, "09171234567")
	event.RecipientIDs = []uuid.UUID{recipient.ID}

	m.alertRepo.EXPECT().FindByID(mock.Anything, event.ID).Return(event, nil)
	m.recipientRepo.EXPECT().FindByIDs(mock.Anything, event.RecipientIDs).Return([]*entity.Recipient{recipient}, nil)
	m.deliveryLogRepo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)
	m.smsGateway.EXPECT().Send(mock.Anything, "639171234567", event.Message).
		Return(&service.SMSSendResult{Status: "Pending"}, nil)
	m.deliveryLogRepo.EXPECT().UpdateOutcome(mock.Anything, mock.Anything, entity.DeliveryStatusSent, mock.Anything).Return(nil)
	m.alertRepo.EXPECT().MarkSent(mock.Anything, event.ID, mock.Anything).Return(nil)

	result, err := svc.DeliverStored(context.Background(), event.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestDispatchService_DeliverStored_NotFound(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	alertID := uuid.New()

	m.alertRepo.EXPECT().FindByID(mock.Anything, alertID).Return(nil, errors.New("alert event not found"))

	_, err := svc.DeliverStored(context.Background(), alertID)

	assert.Error(t, err)
}

func TestDispatchService_Deliver_MarkSentFailureIsIncomplete(t *testing.T) {
	svc, m := createTestDispatchService(t, false)
	event := newPendingAlert()

	m.alertRepo.EXPECT().MarkSent(mock.Anything, event.ID, mock.Anything).Return(errors.New("deadlock detected"))

	result, err := svc.Deliver(context.Background(), event, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrDispatchIncomplete)
	assert.NotNil(t, result)
}
