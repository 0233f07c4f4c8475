package livereload

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/zbd-node-docs/internal/catalog"
	"github.com/nfrund/zbd-node-docs/internal/hub"
	"github.com/nfrund/zbd-node-docs/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloadNoticeReachesBrowser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := hub.NewHub()
	go h.Run(ctx)

	bus := pubsub.NewWatermillBridge()
	defer bus.Close()
	require.NoError(t, Forward(ctx, bus, h))

	e := echo.New()
	e.GET("/ws/reload", NewHandler(h).ServeWS)
	srv := httptest.NewServer(e)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/reload"
	dialCtx, dialCancel := context.WithTimeout(ctx, 2*time.Second)
	defer dialCancel()
	conn, _, err := websocket.Dial(dialCtx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.Eventually(t, func() bool { return h.Count() == 1 }, time.Second, 10*time.Millisecond)

	store := catalog.NewStore(catalog.Default(), bus)
	next := catalog.New([]catalog.Method{{Name: "x", Entity: catalog.EntityWallet, Description: "d"}}, "test")
	store.Replace(ctx, next)

	readCtx, readCancel := context.WithTimeout(ctx, 2*time.Second)
	defer readCancel()
	_, data, err := conn.Read(readCtx)
	require.NoError(t, err)

	var notice Notice
	require.NoError(t, json.Unmarshal(data, &notice))
	assert.Equal(t, "reload", notice.Type)
	assert.Equal(t, next.Version(), notice.Version)
}

func TestConnectionsCloseWhenHubStops(t *testing.T) {
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()

	h := hub.NewHub()
	go h.Run(hubCtx)

	e := echo.New()
	e.GET("/ws/reload", NewHandler(h).ServeWS)
	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws/reload", nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	require.Eventually(t, func() bool { return h.Count() == 1 }, time.Second, 10*time.Millisecond)
	stopHub()
	<-h.Done()

	_, _, err = conn.Read(ctx)
	require.Error(t, err)
	assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
}
