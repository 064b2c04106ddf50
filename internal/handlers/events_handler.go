package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/events"
)

const (
	sseBuffer    = 16
	sseHeartbeat = 25 * time.Second
)

type EventsHandler struct {
	bus       *events.Bus
	heartbeat time.Duration
}

func NewEventsHandler(bus *events.Bus) *EventsHandler {
	return &EventsHandler{bus: bus, heartbeat: sseHeartbeat}
}

// ======================================================
// STREAM (Server-Sent Events)
// ======================================================
// Stream repassa todos os tópicos do bus ao cliente. Se o cliente não der
// conta, eventos são descartados; o front recarrega a lista de qualquer forma.
func (h *EventsHandler) Stream(c *gin.Context) {
	ch := make(chan events.Event, sseBuffer)
	unsubscribe := h.bus.Subscribe(events.All, func(ev events.Event) {
		select {
		case ch <- ev:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("connected", gin.H{"at": time.Now().UTC()})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-ch:
			c.SSEvent(string(ev.Topic), ev)
			c.Writer.Flush()
		case <-ticker.C:
			c.SSEvent("ping", gin.H{})
			c.Writer.Flush()
		}
	}
}
