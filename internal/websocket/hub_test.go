package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T, authorize Authorizer) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil, authorize, zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws/:user", func(c *gin.Context) {
		id, _ := strconv.Atoi(c.Param("user"))
		hub.ServeWs(c, uint(id))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/"
}

func dial(t *testing.T, url string, userID int) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url+strconv.Itoa(userID), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) (string, map[string]int) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Event string         `json:"event"`
		Data  map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev.Event, ev.Data
}

func TestHub_PublishReachesOwner(t *testing.T) {
	hub, url := startHub(t, nil)
	conn := dial(t, url, 42)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("tickets.status", map[string]int{"ticketId": 3, "status": 2}, Audience{UserID: 42})

	event, data := readEvent(t, conn)
	assert.Equal(t, "tickets.status", event)
	assert.Equal(t, 2, data["status"])
}

func TestHub_PublishSkipsClientsOutsideAudience(t *testing.T) {
	authorize := func(_ context.Context, userID uint, resource, action string) (bool, error) {
		return userID == 7 && resource == "warehouse" && action == "view", nil
	}
	hub, url := startHub(t, authorize)
	keeper := dial(t, url, 7)
	stranger := dial(t, url, 8)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("warehouse.stock", map[string]int{"itemId": 1, "quantity": 4}, Audience{Resource: "warehouse", Action: "view"})
	hub.Publish("tickets.message", map[string]int{"ticketId": 5}, Audience{UserID: 8, Resource: "tickets", Action: "manage"})

	event, data := readEvent(t, keeper)
	assert.Equal(t, "warehouse.stock", event)
	assert.Equal(t, 4, data["quantity"])

	// the stranger gets only the ticket it owns, never the stock change
	event, data = readEvent(t, stranger)
	assert.Equal(t, "tickets.message", event)
	assert.Equal(t, 5, data["ticketId"])

	require.NoError(t, keeper.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := keeper.ReadMessage()
	assert.Error(t, err)
}

func TestHub_AuthorizerFailureDropsRecipient(t *testing.T) {
	authorize := func(context.Context, uint, string, string) (bool, error) {
		return false, errors.New("cache down")
	}
	hub, url := startHub(t, authorize)
	conn := dial(t, url, 3)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish("warehouse.stock", map[string]int{"itemId": 1}, Audience{Resource: "warehouse", Action: "view"})
	hub.Publish("tickets.status", map[string]int{"ticketId": 9}, Audience{UserID: 3})

	event, data := readEvent(t, conn)
	assert.Equal(t, "tickets.status", event)
	assert.Equal(t, 9, data["ticketId"])
}

func TestHub_RejectsForeignOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub([]string{"http://app.example"}, nil, zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) { hub.ServeWs(c, 1) })
	srv := httptest.NewServer(r)
	defer srv.Close()

	header := http.Header{"Origin": []string{"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHub_PublishWithoutClientsDoesNotBlock(t *testing.T) {
	hub := NewHub(nil, nil, zap.NewNop().Sugar())
	for i := 0; i < broadcastQueue*2; i++ {
		hub.Publish("tickets.message", i, Audience{UserID: 1})
	}
}
