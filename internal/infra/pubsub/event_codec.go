package pubsub

import (
	"encoding/json"

	"safetrack/internal/domain/constants"
	"safetrack/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent renders an alert dispatch event as a message body plus the
// attributes the worker reads before decoding the body.
func encodeEvent(event *service.AlertDispatchEvent) ([]byte, map[string]string, error) {
	if event == nil || event.AlertID == "" {
		return nil, nil, errors.New("alert dispatch event needs an alert id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrAlertID: event.AlertID,
		constants.AttrChildID: event.ChildID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
