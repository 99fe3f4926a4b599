package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/patentehub/patente_hub/models"
)

// Hub pushes community notifications to connected clients the moment
// they are created. One connection per user; a newer connection
// replaces the old one.

type Client struct {
	UserID string
	Conn   *websocket.Conn
}

var clients = make(map[string]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var push = make(chan *models.CommunityNotification, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case n := <-push:
			clientsMu.RLock()
			conn, ok := clients[n.ToUserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(n); err != nil {
				log.Printf("Error pushing notification to user %s: %v", n.ToUserID, err)
			}
		}
	}
}

// Push queues a notification for live delivery. Drops silently when
// the recipient is offline or the queue is full; the database copy is
// the source of truth either way.
func Push(n *models.CommunityNotification) {
	select {
	case push <- n:
	default:
	}
}

// Serve keeps one user's connection registered until it closes.
func Serve(userID string) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		client := &Client{UserID: userID, Conn: conn}
		Register <- client
		defer func() {
			Unregister <- client
			conn.Close()
		}()

		for {
			// Clients only listen; reading just detects disconnect.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
