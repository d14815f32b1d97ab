// Package mqtt feeds device position reports published over MQTT into the
// ingestion pipeline.
package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"safetrack/config"
	"safetrack/internal/delivery"
	deliverycontext "safetrack/internal/delivery/context"
	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/usecase"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// quiesce is how long Disconnect waits for in-flight work, in milliseconds
	quiesce = 250

	// ingestTimeout bounds one message; paho handlers must not block the client forever
	ingestTimeout = 30 * time.Second

	devicesSegment = "devices"
)

// LocationPayload is the JSON body devices publish
type LocationPayload struct {
	SubjectID  string     `json:"subject_id"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Accuracy   *float64   `json:"accuracy,omitempty"`
	ReportedAt *time.Time `json:"reported_at,omitempty"`
}

type subscriber struct {
	cfg         *config.MQTTConfig
	logger      *slog.Logger
	ingestionUC usecase.IngestionUsecase
	newClient   func(*paho.ClientOptions) paho.Client
	client      paho.Client
}

// SubscriberParams holds dependencies for the MQTT subscriber
type SubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	IngestionUC usecase.IngestionUsecase
}

// NewSubscriber returns the MQTT delivery, or nil when MQTT is disabled.
func NewSubscriber(params SubscriberParams) delivery.Delivery {
	if params.Cfg.MQTT == nil || !params.Cfg.MQTT.Enabled {
		params.Logger.Info("MQTT ingestion disabled")

		return nil
	}

	sub := &subscriber{
		cfg:         params.Cfg.MQTT,
		logger:      params.Logger.With(slog.String("transport", "mqtt")),
		ingestionUC: params.IngestionUC,
		newClient:   paho.NewClient,
	}

	params.Lc.Append(fx.Hook{
		OnStop: sub.stop,
	})

	return sub
}

// Serve connects to the broker and subscribes to the location topic. Paho
// keeps the subscription alive across reconnects.
func (s *subscriber) Serve(ctx context.Context) error {
	opts := paho.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	opts.SetClientID(s.cfg.ClientID)
	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
	}
	if s.cfg.Password != "" {
		opts.SetPassword(s.cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetOnConnectHandler(func(client paho.Client) {
		// Clean sessions drop subscriptions, so resubscribe on every connect.
		token := client.Subscribe(s.cfg.Topic, s.cfg.QoS, func(_ paho.Client, msg paho.Message) {
			s.handleMessage(ctx, msg.Topic(), msg.Payload())
		})
		if token.Wait() && token.Error() != nil {
			s.logger.Error("Failed to subscribe", slog.String("topic", s.cfg.Topic), slog.Any("error", token.Error()))

			return
		}
		s.logger.Info("Subscribed to device locations", slog.String("topic", s.cfg.Topic))
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		s.logger.Warn("MQTT connection lost", slog.Any("error", err))
	})

	s.client = s.newClient(opts)

	s.logger.Info("Connecting to MQTT broker", slog.String("broker", s.cfg.Broker))
	if token := s.client.Connect(); token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "failed to connect to MQTT broker")
	}

	return nil
}

func (s *subscriber) stop(_ context.Context) error {
	if s.client == nil {
		return nil
	}

	s.logger.Info("Disconnecting from MQTT broker")
	s.client.Disconnect(quiesce)

	return nil
}

// handleMessage runs one report through ingestion. MQTT has no response
// channel, so every outcome ends in a log line.
func (s *subscriber) handleMessage(ctx context.Context, topic string, payload []byte) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ingestTimeout)
	defer cancel()

	ctx, logger := deliverycontext.WithRequestScope(ctx, s.logger, "", slog.String("topic", topic))

	input, err := parsePayload(topic, payload)
	if err != nil {
		logger.Warn("Dropping malformed location message", slog.Any("error", err))

		return
	}

	result, err := s.ingestionUC.Ingest(ctx, input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
			logger.Warn("Location rejected",
				slog.String("subject_id", input.SubjectID),
				slog.String("code", appErr.ErrorCode()),
				slog.String("details", appErr.Details()),
			)

			return
		}
		logger.Error("Location ingestion failed", slog.String("subject_id", input.SubjectID), slog.Any("error", err))

		return
	}

	logger.Info("Location ingested",
		slog.String("subject_id", input.SubjectID),
		slog.Bool("inside_safe_zone", result.InsideSafeZone),
		slog.Bool("alert_sent", result.AlertSent),
		slog.Bool("alert_skipped", result.AlertSkipped),
		slog.Bool("dispatch_queued", result.DispatchQueued),
	)
}

// parsePayload decodes a device message. A payload without subject_id takes
// it from the topic segment after "devices".
func parsePayload(topic string, payload []byte) (*usecase.IngestLocationInput, error) {
	var body LocationPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, errors.Wrap(err, "invalid JSON payload")
	}

	subjectID := strings.TrimSpace(body.SubjectID)
	if subjectID == "" {
		subjectID = subjectFromTopic(topic)
	}

	return &usecase.IngestLocationInput{
		SubjectID:  subjectID,
		Latitude:   body.Latitude,
		Longitude:  body.Longitude,
		Accuracy:   body.Accuracy,
		ReportedAt: body.ReportedAt,
	}, nil
}

func subjectFromTopic(topic string) string {
	segments := strings.Split(topic, "/")
	for idx, segment := range segments {
		if segment == devicesSegment && idx+1 < len(segments) {
			return segments[idx+1]
		}
	}

	return ""
}
