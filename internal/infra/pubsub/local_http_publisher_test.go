package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"safetrack/config"
	"safetrack/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishAlertDispatchEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL+"/push", testLogger())
	event := &service.AlertDispatchEvent{
		RequestID:    "req-1",
		AlertID:      "0b7e7c52-4c3b-4bde-9a51-0d2f8a1f0c11",
		ChildID:      "2d1c8b0e-1f41-4a8e-a0f6-5c3f2b7e9d20",
		RecipientIDs: []string{"r1", "r2"},
	}

	require.NoError(t, publisher.PublishAlertDispatchEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.AlertID, received.Message.MessageID)
	assert.Equal(t, event.AlertID, received.Message.Attributes["alert_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.AlertDispatchEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_WorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishAlertDispatchEvent(context.Background(), &service.AlertDispatchEvent{AlertID: "a"})

	assert.Error(t, err)
}

func TestNewEventPublisher_Unconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	assert.Error(t, publisher.PublishAlertDispatchEvent(context.Background(), &service.AlertDispatchEvent{AlertID: "a"}))
	assert.NoError(t, publisher.Close())
}

func asyncConfig(pubsubCfg *config.PubSubConfig) *config.Config {
	cfg := &config.Config{PubSub: pubsubCfg}
	cfg.Alerting.DispatchMode = config.DispatchModeAsync

	return cfg
}

func TestNewEventPublisher_UnknownProvider(t *testing.T) {
	_, err := NewEventPublisher(PublisherParams{
		Ctx:    context.Background(),
		Config: asyncConfig(&config.PubSubConfig{Provider: "kafka"}),
		Logger: testLogger(),
	})

	assert.Error(t, err)
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	t.Run("sync mode ignores a configured provider", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}}
		cfg.Alerting.DispatchMode = config.DispatchModeSync

		publisher, err := NewEventPublisher(PublisherParams{Ctx: context.Background(), Config: cfg, Logger: testLogger()})
		require.NoError(t, err)

		assert.IsType(t, &noopPublisher{}, publisher)
	})

	t.Run("local provider needs an endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: asyncConfig(&config.PubSubConfig{Provider: "local"}),
			Logger: testLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("google provider needs project and topic", func(t *testing.T) {
		_, err := NewEventPublisher(PublisherParams{
			Ctx:    context.Background(),
			Config: asyncConfig(&config.PubSubConfig{Provider: "google", ProjectID: "p"}),
			Logger: testLogger(),
		})

		assert.Error(t, err)
	})

	t.Run("local provider registers its close hook", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		publisher, err := NewEventPublisher(PublisherParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: asyncConfig(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}),
			Logger: testLogger(),
		})
		require.NoError(t, err)

		assert.IsType(t, &localHTTPPublisher{}, publisher)
		lc.RequireStart().RequireStop()
	})
}
