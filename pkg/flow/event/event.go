// Package event distributes node status transitions to streaming
// consumers. The engine publishes a StatusEvent for every idle/running/
// success/error transition; a real-time collaborator subscribes and
// forwards the events over whatever channel it owns. The engine never
// learns about the transport.
package event

import (
	"time"

	"github.com/google/uuid"
)

// StatusEvent describes one node status transition within a run.
type StatusEvent struct {
	EventID string    `json:"event_id"`
	RunID   string    `json:"run_id"`
	NodeID  string    `json:"node_id"`
	Status  string    `json:"status"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

// NewStatusEvent creates a status event with a generated event id and the
// current timestamp.
func NewStatusEvent(runID, nodeID, status string, err error) StatusEvent {
	evt := StatusEvent{
		EventID: uuid.New().String(),
		RunID:   runID,
		NodeID:  nodeID,
		Status:  status,
		At:      time.Now().UTC(),
	}
	if err != nil {
		evt.Error = err.Error()
	}
	return evt
}
