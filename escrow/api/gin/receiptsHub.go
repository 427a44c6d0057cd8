package gin

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/klever-io/mx-gig-escrow-go/escrow/journal"
)

const (
	clientBufferSize = 32
	writeTimeout     = 5 * time.Second
	allOrigins       = "*"
)

type wsClient struct {
	conn *websocket.Conn
	send chan *journal.Entry
}

type receiptsHub struct {
	mut      sync.RWMutex
	clients  map[*wsClient]struct{}
	upgrader websocket.Upgrader
}

// NewReceiptsHub creates the hub streaming every journal entry to the connected websocket clients
func NewReceiptsHub(allowedOrigins []string) *receiptsHub {
	hub := &receiptsHub{
		clients: make(map[*wsClient]struct{}),
	}
	hub.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return isOriginAllowed(allowedOrigins, r.Header.Get("Origin"), r.Host)
		},
	}

	return hub
}

// NotifyEntry pushes the entry to every client. Clients which do not keep up are disconnected
func (hub *receiptsHub) NotifyEntry(entry *journal.Entry) {
	hub.mut.RLock()
	slowClients := make([]*wsClient, 0)
	for client := range hub.clients {
		select {
		case client.send <- entry:
		default:
			slowClients = append(slowClients, client)
		}
	}
	hub.mut.RUnlock()

	for _, client := range slowClients {
		log.Debug("dropping slow websocket client", "remote", client.conn.RemoteAddr().String())
		hub.unregister(client)
	}
}

// HandleWebSocket upgrades the request and streams the entries until the client goes away
func (hub *receiptsHub) HandleWebSocket(c *gin.Context) {
	conn, err := hub.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Debug("websocket upgrade failed", "error", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan *journal.Entry, clientBufferSize),
	}
	hub.register(client)
	go hub.writeLoop(client)

	// the stream is one way, reads only detect the client going away
	for {
		_, _, errRead := conn.ReadMessage()
		if errRead != nil {
			if websocket.IsUnexpectedCloseError(errRead, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug("websocket connection closed unexpectedly", "error", errRead)
			}
			break
		}
	}

	hub.unregister(client)
}

func (hub *receiptsHub) writeLoop(client *wsClient) {
	defer func() {
		_ = client.conn.Close()
	}()

	for entry := range client.send {
		_ = client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := client.conn.WriteJSON(entry)
		if err != nil {
			log.Debug("websocket write failed", "error", err)
			return
		}
	}

	_ = client.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (hub *receiptsHub) register(client *wsClient) {
	hub.mut.Lock()
	hub.clients[client] = struct{}{}
	hub.mut.Unlock()

	log.Debug("websocket client connected", "remote", client.conn.RemoteAddr().String())
}

func (hub *receiptsHub) unregister(client *wsClient) {
	hub.mut.Lock()
	defer hub.mut.Unlock()

	_, found := hub.clients[client]
	if !found {
		return
	}

	delete(hub.clients, client)
	close(client.send)
}

func (hub *receiptsHub) numClients() int {
	hub.mut.RLock()
	defer hub.mut.RUnlock()

	return len(hub.clients)
}

// Close disconnects every client
func (hub *receiptsHub) Close() error {
	hub.mut.Lock()
	defer hub.mut.Unlock()

	for client := range hub.clients {
		delete(hub.clients, client)
		close(client.send)
	}

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (hub *receiptsHub) IsInterfaceNil() bool {
	return hub == nil
}

// isOriginAllowed accepts requests without an Origin header, same-origin requests and the
// configured origins. An empty list means same-origin only
func isOriginAllowed(allowedOrigins []string, origin string, host string) bool {
	if len(origin) == 0 {
		return true
	}

	originURL, err := url.Parse(origin)
	if err == nil && len(originURL.Host) > 0 && strings.EqualFold(originURL.Host, host) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if allowed == allOrigins || allowed == origin {
			return true
		}
	}

	return false
}
