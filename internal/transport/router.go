package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nvoss/staff-mesh/internal/domain/event"
	portbus "github.com/nvoss/staff-mesh/internal/port/eventbus"
	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
	"github.com/nvoss/staff-mesh/internal/service/orchestrator"

	dispatchhandler "github.com/nvoss/staff-mesh/internal/transport/dispatch"
	staffhandler "github.com/nvoss/staff-mesh/internal/transport/staff"
	taskhandler "github.com/nvoss/staff-mesh/internal/transport/task"
	wshandler "github.com/nvoss/staff-mesh/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	orch *orchestrator.Service,
	rec portrecommender.Recommender,
	taskRepo porttask.Repository,
	staffRepo portstaff.Repository,
	eventBus portbus.EventBus,
	mcpHandler http.Handler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	taskhandler.Register(api.Group("/tasks"), taskRepo)
	staffhandler.Register(api.Group("/staff"), staffRepo)
	dispatchhandler.Register(api, orch, rec)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	if mcpHandler != nil {
		r.Any("/mcp", gin.WrapH(mcpHandler))
		r.Any("/mcp/*path", gin.WrapH(mcpHandler))
	}

	// Bridge: one subscription per domain channel. Events carry only ids;
	// clients refetch state through the read API.
	for _, ch := range []event.Channel{
		event.ChannelDispatch,
		event.ChannelStaff,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
