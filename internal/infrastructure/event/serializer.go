package event

import (
	"fmt"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/goccy/go-json"
)

// Encode serializes an event message for transport
func Encode(msg shared.EventMessage) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", msg.EventName, err)
	}
	return data, nil
}

// Decode deserializes a transported event message
func Decode(data []byte) (shared.EventMessage, error) {
	var msg shared.EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if msg.EventName == "" {
		return msg, fmt.Errorf("event without name")
	}
	return msg, nil
}
