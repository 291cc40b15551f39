package core

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const reloadMessage = "reload"

type LiveReloaderInterface interface {
	BroadcastReload()
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader tracks connected dev-mode browsers and tells them to reload
// when the watcher sees a change. The layout's livereload template func
// injects the matching client script.
type LiveReloader struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = true
	lr.mu.Unlock()

	go lr.drain(conn)
}

// drain discards client frames until the connection drops, then forgets it.
func (lr *LiveReloader) drain(conn *websocket.Conn) {
	defer func() {
		lr.mu.Lock()
		delete(lr.clients, conn)
		lr.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (lr *LiveReloader) BroadcastReload() {
	lr.mu.Lock()
	defer lr.mu.Unlock()

	for conn := range lr.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			conn.Close()
			delete(lr.clients, conn)
		}
	}
}
