package main

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/coder/websocket"
)

// progressEvent is the message sent to watchers on every tile completion and
// once more when the render finishes.
type progressEvent struct {
	Percent   float64 `json:"percent"`
	Done      bool    `json:"done"`
	ElapsedMs int64   `json:"elapsed_ms,omitempty"`
}

// progressHub fans progress events out to connected websocket watchers.
// Watchers may connect mid-render; they immediately get the latest event.
type progressHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	last  []byte
}

func newProgressHub() *progressHub {
	return &progressHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *progressHub) add(ctx context.Context, c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last != nil {
		if err := c.Write(ctx, websocket.MessageText, h.last); err != nil {
			c.Close(websocket.StatusInternalError, "write failed")
			return
		}
	}
	h.conns[c] = struct{}{}
}

func (h *progressHub) broadcast(ctx context.Context, ev progressEvent) {
	data, err := sonic.Marshal(ev)
	if err != nil {
		log.Printf("marshal progress event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.conns {
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			c.Close(websocket.StatusInternalError, "write failed")
			delete(h.conns, c)
		}
	}
}

// watchServer serves the websocket progress endpoint at /ws.
func watchServer(ctx context.Context, addr string, hub *progressHub) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		// Watchers never send anything; CloseRead keeps control frames
		// serviced and cancels the context when they disconnect.
		hub.add(c.CloseRead(ctx), c)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("progress watcher on ws://%s/ws", addr)
	return srv
}
