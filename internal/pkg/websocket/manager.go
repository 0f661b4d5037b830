package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/dispatch/internal/pkg/constants"
	jwtpkg "github.com/piresc/dispatch/internal/pkg/jwt"
	"github.com/piresc/dispatch/internal/pkg/logger"
	"github.com/piresc/dispatch/internal/pkg/models"
)

const (
	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192
	sendBufferSize = 64
)

// Handler receives the lifecycle and inbound messages of authenticated connections
type Handler interface {
	OnConnect(client *Client)
	OnMessage(ctx context.Context, client *Client, msg models.WSMessage)
	OnDisconnect(client *Client)
}

// Manager authenticates, upgrades and tracks WebSocket connections
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request, authenticates the token from the
// Authorization header or the token query parameter, and serves the connection
// until it closes. Authentication failures close the socket with 4001 or 4003.
func (m *Manager) HandleConnection(c echo.Context, handler Handler) error {
	token := bearerToken(c.Request())

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	if token == "" {
		closeWith(ws, constants.CloseMissingToken, constants.CloseReasonMissingToken)
		return nil
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		closeWith(ws, constants.CloseInvalidToken, constants.CloseReasonInvalidToken)
		return nil
	}

	client := newClient(uuid.NewString(), claims.UserID, claims.Role, ws)
	m.add(client)
	defer m.remove(client)

	logger.Debug("WebSocket client connected",
		logger.String("connection_id", client.ConnectionID()),
		logger.String("user_id", client.UserID()),
		logger.String("role", client.Role()))

	handler.OnConnect(client)
	go client.writePump()
	client.readPump(handler)
	handler.OnDisconnect(client)

	logger.Debug("WebSocket client disconnected",
		logger.String("connection_id", client.ConnectionID()),
		logger.String("user_id", client.UserID()))
	return nil
}

// GetClient returns a connection by id
func (m *Manager) GetClient(connectionID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[connectionID]
	return client, exists
}

// Count returns the number of open connections
func (m *Manager) Count() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// CloseAll closes every open connection
func (m *Manager) CloseAll() {
	m.RLock()
	clients := make([]*Client, 0, len(m.clients))
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	m.RUnlock()

	for _, c := range clients {
		c.Close()
	}
}

func (m *Manager) add(client *Client) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.ConnectionID()] = client
}

func (m *Manager) remove(client *Client) {
	m.Lock()
	delete(m.clients, client.ConnectionID())
	m.Unlock()
	client.Close()
}

func bearerToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

func closeWith(ws *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = ws.Close()
}

// Client is one authenticated connection with its outbound queue
type Client struct {
	id     string
	userID string
	role   string
	conn   *websocket.Conn
	send   chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(id, userID, role string, conn *websocket.Conn) *Client {
	return &Client{
		id:     id,
		userID: userID,
		role:   role,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (c *Client) ConnectionID() string { return c.id }
func (c *Client) UserID() string       { return c.userID }
func (c *Client) Role() string         { return c.role }

// Send queues a frame without blocking. It reports false when the queue is full
// or the connection is closed, in which case the frame is dropped.
func (c *Client) Send(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// SendEvent encodes and queues a server event
func (c *Client) SendEvent(e models.Event) bool {
	data, err := models.EncodeEvent(e)
	if err != nil {
		logger.Error("Failed to encode event", logger.String("event", e.EventName()), logger.Err(err))
		return false
	}
	return c.Send(data)
}

// SendError queues an error event
func (c *Client) SendError(code, message string) bool {
	return c.SendEvent(models.ErrorEvent{Code: code, Message: message})
}

// Close stops the pumps and closes the socket. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

func (c *Client) readPump(handler Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer c.Close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read error",
					logger.String("connection_id", c.id),
					logger.Err(err))
			}
			return
		}

		var msg models.WSMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Event == "" {
			c.SendError(constants.ErrorInvalidFormat, "message must be a JSON object with an event field")
			continue
		}

		handler.OnMessage(ctx, c, msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-c.done:
			return

		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
