package wire

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvoss/staff-mesh/internal/adapter/memory"
	pgdb "github.com/nvoss/staff-mesh/internal/adapter/postgres"
	pgeventbus "github.com/nvoss/staff-mesh/internal/adapter/postgres/eventbus"
	pglocker "github.com/nvoss/staff-mesh/internal/adapter/postgres/locker"
	pgstaff "github.com/nvoss/staff-mesh/internal/adapter/postgres/staff"
	pgtask "github.com/nvoss/staff-mesh/internal/adapter/postgres/task"

	portbus "github.com/nvoss/staff-mesh/internal/port/eventbus"
	portlocker "github.com/nvoss/staff-mesh/internal/port/locker"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"

	"github.com/nvoss/staff-mesh/internal/service/committer"
	"github.com/nvoss/staff-mesh/internal/service/orchestrator"
	"github.com/nvoss/staff-mesh/internal/service/recommender"
	"github.com/nvoss/staff-mesh/internal/service/scoring"

	"github.com/nvoss/staff-mesh/internal/transport"
	mcptransport "github.com/nvoss/staff-mesh/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the server.
type App struct {
	Pool   *pgxpool.Pool // nil in memory mode
	Server *http.Server
	Orch   *orchestrator.Service
}

// staffRepository is what the composition root needs from a staff adapter:
// the full repository plus the roster snapshot.
type staffRepository interface {
	portstaff.Repository
	portstaff.RosterReader
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies. With DATABASE_URL set the Postgres adapters
// are used; without it the in-memory store backs everything, which is enough
// for local development and demos.
func Build(ctx context.Context) (*App, error) {
	var (
		pool      *pgxpool.Pool
		taskRepo  porttask.Repository
		staffRepo staffRepository
		eventBus  portbus.EventBus
		locker    portlocker.AdvisoryLocker
	)

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		var err error
		pool, err = pgdb.Connect(ctx, dbURL)
		if err != nil {
			return nil, err
		}
		taskRepo = pgtask.New(pool)
		staffRepo = pgstaff.New(pool)
		eventBus = pgeventbus.New(pool)
		locker = pglocker.New(pool)
		slog.Info("using postgres store")
	} else {
		store := memory.NewStore()
		taskRepo = store.TaskRepo()
		staffRepo = store.StaffRepo()
		eventBus = memory.NewBus()
		locker = memory.NewLocker()
		slog.Info("DATABASE_URL not set, using in-memory store")
	}

	engine := scoring.NewEngine(scoring.DefaultPolicy())
	recSvc := recommender.NewService(taskRepo, staffRepo, engine)
	commitSvc := committer.NewService(taskRepo, staffRepo, eventBus)
	orchSvc := orchestrator.NewService(taskRepo, staffRepo, recSvc, commitSvc, eventBus, locker)

	mcpServer := mcptransport.New(orchSvc, recSvc)

	router := transport.NewRouter(ctx, orchSvc, recSvc, taskRepo, staffRepo, eventBus, mcpServer.Handler())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired", "port", port)

	return &App{
		Pool:   pool,
		Server: server,
		Orch:   orchSvc,
	}, nil
}
