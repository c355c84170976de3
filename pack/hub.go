package pack

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Report is the wire message pushed to diagnostics subscribers.
type Report struct {
	Type        string       `json:"type"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	GeneratedAt int64        `json:"generatedAt"`
}

type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) send(report Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub fans lint reports out to websocket subscribers, typically editor
// tooling watching a pack under development. New subscribers receive the
// latest report immediately; every Rescan broadcasts a fresh one. Dead
// connections are dropped on write failure.
type Hub struct {
	pack   *Pack
	logger *slog.Logger

	mu          sync.Mutex
	nextID      int
	subscribers map[int]*subscriber
	last        []Diagnostic
}

// NewHub wraps a pack for diagnostics serving. A nil logger discards logs.
func NewHub(p *Pack, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hub{
		pack:        p,
		logger:      logger,
		subscribers: make(map[int]*subscriber),
	}
}

// Rescan lints the pack, stores the result, and broadcasts it.
func (h *Hub) Rescan() ([]Diagnostic, error) {
	diags, err := h.pack.Lint()
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.last = append([]Diagnostic(nil), diags...)
	h.mu.Unlock()

	h.broadcast(diags)
	return diags, nil
}

// Subscribe registers a connection, sends it the latest report, and starts a
// reader loop: any inbound frame requests a rescan, and closing the socket
// unsubscribes.
func (h *Hub) Subscribe(conn *websocket.Conn) {
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subscribers[id] = sub
	last := append([]Diagnostic(nil), h.last...)
	h.mu.Unlock()

	if err := sub.send(h.report(last)); err != nil {
		h.logger.Warn("initial report send failed", "subscriber", id, "err", err)
		h.drop(id)
		return
	}

	go func() {
		defer h.drop(id)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			if _, err := h.Rescan(); err != nil {
				h.logger.Error("rescan failed", "err", err)
			}
		}
	}()
}

// Handler exposes the hub over HTTP: `/ws` upgrades to the diagnostics
// stream, `POST /rescan` triggers a re-lint and returns the fresh report.
func (h *Hub) Handler() http.Handler {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(*http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", "err", err)
			return
		}
		h.Subscribe(conn)
	})
	mux.HandleFunc("/rescan", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		diags, err := h.Rescan()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(h.report(diags)); err != nil {
			h.logger.Warn("rescan response write failed", "err", err)
		}
	})
	return mux
}

func (h *Hub) report(diags []Diagnostic) Report {
	if diags == nil {
		diags = []Diagnostic{}
	}
	return Report{
		Type:        "diagnostics",
		Diagnostics: diags,
		GeneratedAt: time.Now().UnixMilli(),
	}
}

func (h *Hub) broadcast(diags []Diagnostic) {
	report := h.report(diags)

	h.mu.Lock()
	subs := make(map[int]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.send(report); err != nil {
			h.logger.Warn("dropping subscriber", "subscriber", id, "err", err)
			h.drop(id)
		}
	}
}

func (h *Hub) drop(id int) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}
