package events

import (
	"log/slog"
	"sync"
	"time"
)

type Topic string

const (
	ClientsUpdated   Topic = "clients.updated"
	PaymentsUpdated  Topic = "payments.updated"
	SessionsUpdated  Topic = "sessions.updated"
	RemindersUpdated Topic = "reminders.updated"
	SettingsUpdated  Topic = "settings.updated"

	// All recebe todos os tópicos (usado pelo stream SSE)
	All Topic = "*"
)

const defaultQueueSize = 100

type Event struct {
	Topic  Topic     `json:"topic"`
	Action string    `json:"action"`
	ID     uint      `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

type Handler func(Event)

// Bus entrega eventos de mudança aos inscritos numa goroutine própria.
// Publish nunca bloqueia: com a fila cheia o evento é descartado.
type Bus struct {
	logger *slog.Logger
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	subs   map[Topic]map[uint64]Handler
	nextID uint64
	closed bool
}

func NewBus(logger *slog.Logger) *Bus {
	return newBus(logger, defaultQueueSize)
}

func newBus(logger *slog.Logger, size int) *Bus {
	if logger == nil {
		logger = slog.Default()
	}

	b := &Bus{
		logger: logger,
		queue:  make(chan Event, size),
		done:   make(chan struct{}),
		subs:   map[Topic]map[uint64]Handler{},
	}

	go b.worker()
	return b
}

func (b *Bus) worker() {
	defer close(b.done)

	for ev := range b.queue {
		for _, h := range b.handlers(ev.Topic) {
			b.deliver(h, ev)
		}
	}
}

func (b *Bus) handlers(topic Topic) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Handler, 0, len(b.subs[topic])+len(b.subs[All]))
	for _, h := range b.subs[topic] {
		out = append(out, h)
	}
	for _, h := range b.subs[All] {
		out = append(out, h)
	}
	return out
}

// um inscrito com panic não derruba o worker
func (b *Bus) deliver(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic", "topic", ev.Topic, "panic", r)
		}
	}()
	h(ev)
}

// Subscribe registra h para topic e devolve a função que cancela a inscrição.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID

	if b.subs[topic] == nil {
		b.subs[topic] = map[uint64]Handler{}
	}
	b.subs[topic][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[topic], id)
		})
	}
}

// Publish enfileira o evento. Retorna false se ele foi descartado.
func (b *Bus) Publish(ev Event) bool {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}

	select {
	case b.queue <- ev:
		return true
	default:
		// fila cheia → descartamos (nunca quebrar a operação que publicou)
		b.logger.Warn("event queue full, dropping event", "topic", ev.Topic, "action", ev.Action)
		return false
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		<-b.done
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
}

// Publisher é o lado de quem só publica (service, settings).
type Publisher interface {
	Publish(ev Event) bool
}

var _ Publisher = (*Bus)(nil)
