package amqp

import (
	"encoding/json"
	"time"
)

// Event kinds carried on the ledger queue.
const (
	EventCreated = "created"
	EventDeleted = "deleted"
)

// LedgerEventMessage is a lightweight notification that the ledger
// changed. It carries only the transaction ID; the worker re-reads the
// full row from storage.
type LedgerEventMessage struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func NewLedgerEventMessage(id, kind string) *LedgerEventMessage {
	return &LedgerEventMessage{
		ID:        id,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
