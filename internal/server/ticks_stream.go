package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/aristath/bazaar/internal/events"
	"github.com/aristath/bazaar/internal/modules/market"
	"github.com/aristath/bazaar/internal/scheduler"
)

const tickWriteTimeout = 5 * time.Second

// streamedTypes are sent when the client does not filter
var streamedTypes = []events.EventType{events.MarketTick, events.SIPChanged, events.SettingsChanged}

// MoversSnapshot supplies the last computed movers
type MoversSnapshot interface {
	Latest() (market.Movers, bool)
}

// TicksStreamHandler streams market ticks and state changes over a WebSocket
type TicksStreamHandler struct {
	bus    *events.Bus
	movers MoversSnapshot
	log    zerolog.Logger
}

// NewTicksStreamHandler creates a new tick stream handler
func NewTicksStreamHandler(bus *events.Bus, movers MoversSnapshot, log zerolog.Logger) *TicksStreamHandler {
	return &TicksStreamHandler{
		bus:    bus,
		movers: movers,
		log:    log.With().Str("component", "ticks_stream").Logger(),
	}
}

// ServeHTTP handles GET /api/stream/ticks?types=MARKET_TICK,SIP_CHANGED.
// A new client first receives the latest movers snapshot, if one exists.
func (h *TicksStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream ended")

	sub := h.bus.Subscribe(parseTypes(r.URL.Query().Get("types"))...)
	defer h.bus.Unsubscribe(sub)

	// The client never sends; CloseRead cancels ctx once it disconnects
	ctx := conn.CloseRead(r.Context())

	h.log.Debug().Str("remote", r.RemoteAddr).Msg("Tick stream client connected")

	if movers, ok := h.movers.Latest(); ok {
		snapshot := events.Event{
			Type:      events.MarketTick,
			Timestamp: time.Now(),
			Module:    "market",
			Data:      scheduler.TickData(movers),
		}
		if err := h.write(ctx, conn, &snapshot); err != nil {
			h.log.Debug().Err(err).Msg("Failed to send snapshot")
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			h.log.Debug().Str("remote", r.RemoteAddr).Msg("Tick stream client disconnected")
			conn.Close(websocket.StatusNormalClosure, "")
			return
		case event, ok := <-sub.C:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			if err := h.write(ctx, conn, &event); err != nil {
				h.log.Debug().Err(err).Msg("Failed to write event, closing stream")
				return
			}
		}
	}
}

func (h *TicksStreamHandler) write(ctx context.Context, conn *websocket.Conn, event *events.Event) error {
	writeCtx, cancel := context.WithTimeout(ctx, tickWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, event)
}

// parseTypes reads a comma-separated filter, defaulting to streamedTypes
func parseTypes(filter string) []events.EventType {
	if strings.TrimSpace(filter) == "" {
		return streamedTypes
	}

	var types []events.EventType
	for _, t := range strings.Split(filter, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, events.EventType(strings.ToUpper(t)))
		}
	}
	if len(types) == 0 {
		return streamedTypes
	}
	return types
}
