package socket

import (
	"log"

	"radost_server/models"

	gosocketio "github.com/erock530/gosf-socketio"
)

// Server wraps the Socket.IO server with per-user rooms. A client emits
// "subscribe" with its user id to start receiving pending-request pushes.
type Server struct {
	io *gosocketio.Server
}

// NewServer initializes the Socket.IO server and its event handlers.
func NewServer() *Server {
	server := gosocketio.NewServer(nil)

	server.On(gosocketio.OnConnection, func(c *gosocketio.Channel) {
		log.Println("Socket connected:", c.Id())
	})

	server.On("subscribe", func(c *gosocketio.Channel, data map[string]string) {
		userID := data["userId"]
		if userID == "" {
			log.Println("Invalid userId in subscribe request")
			return
		}
		log.Printf("Socket %s subscribed to user %s\n", c.Id(), userID)
		c.Join(userRoom(userID))
	})

	server.On("unsubscribe", func(c *gosocketio.Channel, data map[string]string) {
		userID := data["userId"]
		if userID == "" {
			return
		}
		// Leaving twice is harmless; the library ignores unknown rooms.
		c.Leave(userRoom(userID))
	})

	server.On(gosocketio.OnDisconnection, func(c *gosocketio.Channel) {
		log.Println("Socket disconnected:", c.Id())
	})

	return &Server{io: server}
}

// IO exposes the underlying server for mounting on the router.
func (s *Server) IO() *gosocketio.Server {
	return s.io
}

// NotifyPendingRequests broadcasts the recipient's full current pending list
// into their room. Clients replace their view wholesale; no diffing.
func (s *Server) NotifyPendingRequests(userID string, requests []models.MeetingRequest) {
	s.io.BroadcastTo(userRoom(userID), "pendingRequests", requests)
}

func userRoom(userID string) string {
	return "user:" + userID
}
