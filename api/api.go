// Package api exposes the mock backend's HTTP surface: the pairing
// endpoints (login, lobby update, key lookup) and the static content
// routes the game client polls.
package api

import (
	_ "embed"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-openapi/runtime/middleware"

	"github.com/darkfluid/darkfluid/content"
	"github.com/darkfluid/darkfluid/pairing"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Default war season settings, matching the wire contract the client
// expects.
var (
	DefaultWarID    = 801
	DefaultWarStart = time.Date(2024, 1, 23, 12, 5, 13, 0, time.UTC)
)

// API holds the dependencies needed by the REST handlers.
type API struct {
	workflow *pairing.Workflow
	content  *content.Store
	warID    int
	warStart time.Time
	audit    *auditLogger
	now      func() time.Time
}

// Option configures the API instance.
type Option func(*API)

// WithLogger sets the structured logger for request events.
// If not set, a default JSON logger writing to stderr is used.
func WithLogger(logger *slog.Logger) Option {
	return func(a *API) {
		a.audit = newAuditLogger(logger)
	}
}

// WithWarSeason overrides the war season identifier and start instant used
// by the computed war routes.
func WithWarSeason(warID int, warStart time.Time) Option {
	return func(a *API) {
		a.warID = warID
		a.warStart = warStart
	}
}

// WithAlertFunc installs a callback invoked when the rejection-spike
// detector fires.
func WithAlertFunc(fn AlertFunc) Option {
	return func(a *API) {
		a.audit.metrics = newMetricsCollector(fn)
	}
}

// New creates a new API instance.
func New(workflow *pairing.Workflow, store *content.Store, opts ...Option) *API {
	a := &API{
		workflow: workflow,
		content:  store,
		warID:    DefaultWarID,
		warStart: DefaultWarStart,
		audit:    newAuditLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil))),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Router returns a chi.Router with all API routes mounted. The caller is
// expected to mount it under /api.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})

	r.Handle("/docs*", middleware.SwaggerUI(middleware.SwaggerUIOpts{
		SpecURL: "/api/openapi.yaml",
		Path:    "api/docs",
	}, nil))

	r.Handle("/redoc*", middleware.Redoc(middleware.RedocOpts{
		SpecURL: "/api/openapi.yaml",
		Path:    "api/redoc",
	}, nil))

	r.Post("/Account/Login", a.AccountLogin)
	r.Put("/lobby", a.PutLobby)
	r.Get("/Account/Keys", a.GetAccountKeys)

	r.Get("/Configuration/GameClient", a.document("GameClientConfig"))

	r.Get("/WarSeason/current/WarId", a.GetWarID)
	r.Get("/WarSeason/GalacticWarEffects", a.document("GalacticWarEffects"))
	r.Get("/WarSeason/NewsTicker", a.document("NewsTicker"))
	r.Get("/WarSeason/{warID}/warinfo", a.document("WarInfo"))
	r.Get("/WarSeason/{warID}/Status", a.document("WarStatus"))
	r.Get("/WarSeason/{warID}/timeSinceStart", a.GetTimeSinceWarStart)
	r.Get("/v2/Assignment/War/{warID}", a.document("WarAssignment"))
	r.Get("/NewsFeed/{warID}", a.document("NewsFeed"))

	r.Get("/Operation", a.document("Operation"))
	r.Get("/Mission/RewardEntries", a.document("RewardEntries"))
	r.Get("/SeasonPass", a.document("SeasonPass"))

	r.Get("/Progression", a.document("Progression"))
	r.Get("/Progression/ItemPackages", a.document("ItemPackages"))
	r.Get("/Progression/ProgressionPackages", a.document("ProgressionPackages"))
	r.Get("/Progression/items", a.document("ProgressionItems"))
	r.Get("/Progression/levelspec", a.document("LevelSpec"))
	r.Get("/Progression/inventory", a.document("ProgressionInventory"))
	r.Get("/Progression/customization", a.GetProgressionCustomization)
	r.Get("/Progression/items/discounts/{warID}", a.GetItemDiscounts)

	return r
}
