package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"notes-server/internal/config"
	"notes-server/internal/domain"
	"notes-server/internal/repository"
	"notes-server/internal/service"
	"notes-server/internal/websocket"
	"notes-server/pkg/logger"

	ws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWebSocketServer(t *testing.T, maxClients int) (*httptest.Server, *websocket.Manager) {
	t.Helper()

	log := logger.New(zap.NewNop())
	manager := websocket.NewManager(websocket.Options{
		MaxClients:     maxClients,
		MaxMessageSize: 4096,
		WriteWait:      time.Second,
		PongWait:       time.Minute,
		PingPeriod:     50 * time.Second,
	}, log)
	manager.SetMessageHandler(NewWebSocketMessageHandler())
	go manager.Run()
	t.Cleanup(manager.Stop)

	svc := service.NewNoteService(repository.NewNoteRepository(), manager)
	router := NewRouter(RouterDeps{
		Notes:     NewNoteHandler(svc),
		Health:    NewHealthHandler(svc),
		WebSocket: NewWebSocketHandler(manager, 1024, 1024),
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET", AllowedHeaders: "Content-Type"},
		Logger:    log,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, manager
}

func dial(t *testing.T, srv *httptest.Server) *ws.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *ws.Conn) websocket.Message {
	t.Helper()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg websocket.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestWebSocket_BroadcastsNoteEvents(t *testing.T) {
	srv, manager := newWebSocketServer(t, 10)
	conn := dial(t, srv)

	require.Eventually(t, func() bool { return manager.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/notes", "application/json", strings.NewReader(`{"title":"A","content":"B"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	msg := readMessage(t, conn)
	assert.Equal(t, websocket.TypeNoteCreated, msg.Type)

	var note domain.Note
	require.NoError(t, msg.UnmarshalPayload(&note))
	assert.Equal(t, int64(1), note.ID)
	assert.Equal(t, "A", note.Title)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/notes/1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	msg = readMessage(t, conn)
	assert.Equal(t, websocket.TypeNoteDeleted, msg.Type)
}

func TestWebSocket_PingPong(t *testing.T) {
	srv, _ := newWebSocketServer(t, 10)
	conn := dial(t, srv)

	require.NoError(t, conn.WriteMessage(ws.TextMessage, []byte(`{"type":"ping"}`)))
	msg := readMessage(t, conn)
	assert.Equal(t, websocket.TypePong, msg.Type)

	require.NoError(t, conn.WriteMessage(ws.TextMessage, []byte(`{"type":"subscribe"}`)))
	msg = readMessage(t, conn)
	assert.Equal(t, websocket.TypeError, msg.Type)
}

func TestWebSocket_MaxClients(t *testing.T) {
	srv, manager := newWebSocketServer(t, 1)
	dial(t, srv)
	require.Eventually(t, func() bool { return manager.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	extra := dial(t, srv)
	extra.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := extra.ReadMessage()
	var closeErr *ws.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, 1, manager.ClientCount())
}
