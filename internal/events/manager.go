package events

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Manager stamps, publishes and logs events
type Manager struct {
	bus *Bus
	now func() time.Time
	log zerolog.Logger
}

// NewManager creates a new event manager
func NewManager(bus *Bus, log zerolog.Logger) *Manager {
	return &Manager{
		bus: bus,
		now: time.Now,
		log: log.With().Str("service", "events").Logger(),
	}
}

// Bus returns the underlying bus
func (m *Manager) Bus() *Bus {
	return m.bus
}

// Emit publishes typed data on behalf of module
func (m *Manager) Emit(module string, data EventData) {
	event := Event{
		Type:      data.EventType(),
		Timestamp: m.now(),
		Module:    module,
		Data:      data,
	}

	delivered := m.bus.Publish(event)

	logEvent := m.log.Debug()
	if event.Type == ErrorOccurred {
		logEvent = m.log.Warn()
	}
	if eventJSON, err := json.Marshal(&event); err == nil {
		logEvent = logEvent.RawJSON("event", eventJSON)
	}
	logEvent.
		Str("event_type", string(event.Type)).
		Str("module", module).
		Int("delivered", delivered).
		Msg("Event emitted")
}

// EmitError emits an error event
func (m *Manager) EmitError(module string, err error, context map[string]interface{}) {
	m.Emit(module, &ErrorEventData{
		Error:   err.Error(),
		Context: context,
	})
}
