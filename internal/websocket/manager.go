package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"notes-server/internal/domain"
	"notes-server/pkg/logger"

	"go.uber.org/zap"
)

const broadcastBufferSize = 64

type ClientMessage struct {
	Client  *Client
	Message []byte
}

type MessageHandler interface {
	HandleWebSocketMessage(client *Client, msg *Message) error
}

type Options struct {
	MaxClients     int
	MaxMessageSize int64
	WriteWait      time.Duration
	PongWait       time.Duration
	PingPeriod     time.Duration
}

// Manager owns connected clients. Registration, removal, inbound messages
// and broadcasts are all serialized through Run.
type Manager struct {
	clients        map[string]*Client
	clientsMutex   sync.RWMutex
	register       chan *Client
	unregisterCh   chan *Client
	handleMessage  chan *ClientMessage
	broadcast      chan []byte
	done           chan struct{}
	stopOnce       sync.Once
	maxClients     int
	maxMessageSize int64
	writeWait      time.Duration
	pongWait       time.Duration
	pingPeriod     time.Duration
	messageHandler MessageHandler
	log            *logger.Logger
}

func NewManager(opts Options, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Log(context.Background())
	}
	return &Manager{
		clients:        make(map[string]*Client),
		register:       make(chan *Client),
		unregisterCh:   make(chan *Client),
		handleMessage:  make(chan *ClientMessage),
		broadcast:      make(chan []byte, broadcastBufferSize),
		done:           make(chan struct{}),
		maxClients:     opts.MaxClients,
		maxMessageSize: opts.MaxMessageSize,
		writeWait:      opts.WriteWait,
		pongWait:       opts.PongWait,
		pingPeriod:     opts.PingPeriod,
		log:            log,
	}
}

func (m *Manager) SetMessageHandler(handler MessageHandler) {
	m.messageHandler = handler
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.registerClient(client)

		case client := <-m.unregisterCh:
			m.unregisterClient(client)

		case clientMsg := <-m.handleMessage:
			m.processMessage(clientMsg)

		case payload := <-m.broadcast:
			m.broadcastToAll(payload)

		case <-m.done:
			m.closeAll()
			return
		}
	}
}

// Stop makes Run close every client and return.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}

func (m *Manager) Register(client *Client) bool {
	select {
	case m.register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) unregister(client *Client) {
	select {
	case m.unregisterCh <- client:
	case <-m.done:
	}
}

func (m *Manager) handle(msg *ClientMessage) {
	select {
	case m.handleMessage <- msg:
	case <-m.done:
	}
}

func (m *Manager) registerClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	if m.maxClients > 0 && len(m.clients) >= m.maxClients {
		m.log.Warn(context.Background(), "max websocket clients reached",
			zap.String("client_id", client.ID), zap.Int("max_clients", m.maxClients))
		close(client.Send)
		return
	}

	m.clients[client.ID] = client
	m.log.Info(context.Background(), "websocket client registered", zap.String("client_id", client.ID))
}

func (m *Manager) unregisterClient(client *Client) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	m.removeLocked(client)
}

// removeLocked must be called with clientsMutex held.
func (m *Manager) removeLocked(client *Client) {
	if _, ok := m.clients[client.ID]; ok {
		delete(m.clients, client.ID)
		close(client.Send)
		m.log.Info(context.Background(), "websocket client unregistered", zap.String("client_id", client.ID))
	}
}

func (m *Manager) closeAll() {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for _, client := range m.clients {
		m.removeLocked(client)
	}
}

func (m *Manager) processMessage(clientMsg *ClientMessage) {
	var msg Message
	if err := json.Unmarshal(clientMsg.Message, &msg); err != nil {
		m.log.Warn(context.Background(), "invalid websocket message",
			zap.String("client_id", clientMsg.Client.ID), zap.Error(err))
		return
	}

	if m.messageHandler != nil {
		if err := m.messageHandler.HandleWebSocketMessage(clientMsg.Client, &msg); err != nil {
			m.log.Warn(context.Background(), "websocket message handling failed",
				zap.String("client_id", clientMsg.Client.ID), zap.Error(err))
		}
	}
}

func (m *Manager) broadcastToAll(payload []byte) {
	m.clientsMutex.Lock()
	defer m.clientsMutex.Unlock()

	for id, client := range m.clients {
		select {
		case client.Send <- payload:
		default:
			m.log.Warn(context.Background(), "websocket send buffer full, dropping client", zap.String("client_id", id))
			m.removeLocked(client)
		}
	}
}

// PublishNoteEvent queues a note change for every connected client. It never
// blocks; events are dropped when the broadcast queue is full.
func (m *Manager) PublishNoteEvent(event *domain.NoteEvent) {
	msg, err := NewMessage(MessageType(event.Type), event.Note)
	if err != nil {
		m.log.Error(context.Background(), "failed to encode note event", zap.Error(err))
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		m.log.Error(context.Background(), "failed to encode note event", zap.Error(err))
		return
	}

	select {
	case m.broadcast <- payload:
	case <-m.done:
	default:
		m.log.Warn(context.Background(), "broadcast queue full, dropping note event",
			zap.String("type", string(event.Type)))
	}
}

func (m *Manager) SendToClient(clientID string, message *Message) error {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		return err
	}

	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()

	client, exists := m.clients[clientID]
	if !exists {
		return nil
	}

	select {
	case client.Send <- messageBytes:
	default:
		m.log.Warn(context.Background(), "websocket send buffer full", zap.String("client_id", clientID))
	}

	return nil
}

func (m *Manager) ClientCount() int {
	m.clientsMutex.RLock()
	defer m.clientsMutex.RUnlock()
	return len(m.clients)
}
