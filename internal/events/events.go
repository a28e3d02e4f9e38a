package events

import (
	"encoding/json"
	"time"
)

// Event types the engine publishes to the UI.
const (
	TypeRequestsLoaded = "requests_loaded"
	TypeOfferOpened    = "offer_opened"
	TypeOfferCancelled = "offer_cancelled"
	TypeInviteSent     = "invite_sent"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Make serializes an event envelope for the SSE stream.
func Make(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
