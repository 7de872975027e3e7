package progress

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is one scan progress notification pushed to subscribed clients.
type Event struct {
	Type       string   `json:"type"`
	RunID      string   `json:"run_id,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Language   string   `json:"language,omitempty"`
	Label      string   `json:"label,omitempty"`
	Items      int      `json:"items,omitempty"`
	Duplicates int      `json:"duplicates,omitempty"`
	TotalItems int      `json:"total_items,omitempty"`
}

const (
	EventScanStarted  = "scan_started"
	EventLanguageDone = "language_done"
	EventScanFinished = "scan_finished"
	EventStrategyDone = "strategy_done"
)

// Hub fans progress events out to websocket subscribers. Dead clients
// are dropped on the first failed write.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

func (h *Hub) BroadcastJSON(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	b = append(b, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
