package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Travelintrips/HRD/internal/auth"
	"github.com/Travelintrips/HRD/internal/policy"
	"github.com/Travelintrips/HRD/internal/realtime"
	"github.com/Travelintrips/HRD/internal/storage"
	"go.uber.org/zap"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	routerCfg *policy.RouterConfig
	hub       *realtime.Hub
	store     *storage.DocumentStore
	log       *zap.Logger
}

// NewApp creates a new application with all routes configured.
func NewApp(routerCfg *policy.RouterConfig, hub *realtime.Hub, store *storage.DocumentStore, log *zap.Logger) *App {
	app := &App{
		mux:       http.NewServeMux(),
		routerCfg: routerCfg,
		hub:       hub,
		store:     store,
		log:       log,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Global middleware: attach the session user to the request context.
	auth.Middleware(a.mux).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	// ─────────────────────────────────────────────────────────────────────────
	// Public routes (no auth required)
	// ─────────────────────────────────────────────────────────────────────────
	ah := a.routerCfg.AuthHandler

	a.mux.HandleFunc("POST /api/v1/auth/register", ah.Register)
	a.mux.HandleFunc("POST /api/v1/auth/login", ah.Login)
	a.mux.HandleFunc("POST /api/v1/auth/logout", ah.Logout)

	// ─────────────────────────────────────────────────────────────────────────
	// Authenticated API routes
	// ─────────────────────────────────────────────────────────────────────────
	a.mux.Handle("GET /api/v1/auth/session", a.requireAuth(http.HandlerFunc(ah.Session)))

	// Geofence locations
	lh := a.routerCfg.LocationHandler
	a.mux.Handle("GET /api/v1/locations", a.requireAuth(http.HandlerFunc(lh.List)))
	a.mux.Handle("POST /api/v1/locations", a.requireAuth(http.HandlerFunc(lh.Create)))
	a.mux.Handle("GET /api/v1/locations/{id}", a.requireAuth(http.HandlerFunc(lh.Get)))
	a.mux.Handle("PUT /api/v1/locations/{id}", a.requireAuth(http.HandlerFunc(lh.Update)))
	a.mux.Handle("DELETE /api/v1/locations/{id}", a.requireAuth(http.HandlerFunc(lh.Delete)))

	// Employees & branches
	eh := a.routerCfg.EmployeeHandler
	a.mux.Handle("GET /api/v1/employees", a.requireAuth(http.HandlerFunc(eh.List)))
	a.mux.Handle("POST /api/v1/employees", a.requireAuth(http.HandlerFunc(eh.Create)))
	a.mux.Handle("DELETE /api/v1/employees/{id}", a.requireAuth(http.HandlerFunc(eh.Delete)))
	a.mux.Handle("GET /api/v1/branches", a.requireAuth(http.HandlerFunc(a.routerCfg.BranchHandler.List)))

	// Shifts
	sh := a.routerCfg.ShiftHandler
	a.mux.Handle("GET /api/v1/shifts", a.requireAuth(http.HandlerFunc(sh.List)))
	a.mux.Handle("POST /api/v1/shifts", a.requireAuth(http.HandlerFunc(sh.Create)))
	a.mux.Handle("DELETE /api/v1/shifts/{id}", a.requireAuth(http.HandlerFunc(sh.Delete)))

	// Leave requests
	lvh := a.routerCfg.LeaveHandler
	a.mux.Handle("GET /api/v1/leaves", a.requireAuth(http.HandlerFunc(lvh.List)))
	a.mux.Handle("POST /api/v1/leaves", a.requireAuth(http.HandlerFunc(lvh.Create)))
	a.mux.Handle("POST /api/v1/leaves/{id}/review", a.requireAuth(http.HandlerFunc(lvh.Review)))

	// Freelancers
	fh := a.routerCfg.FreelanceHandler
	a.mux.Handle("GET /api/v1/freelance", a.requireAuth(http.HandlerFunc(fh.List)))
	a.mux.Handle("POST /api/v1/freelance", a.requireAuth(http.HandlerFunc(fh.Create)))

	// Attendance & reports
	ath := a.routerCfg.AttendanceHandler
	a.mux.Handle("GET /api/v1/attendance", a.requireAuth(http.HandlerFunc(ath.List)))
	a.mux.Handle("POST /api/v1/attendance/check-in", a.requireAuth(http.HandlerFunc(ath.CheckIn)))
	a.mux.Handle("POST /api/v1/attendance/check-out", a.requireAuth(http.HandlerFunc(ath.CheckOut)))
	a.mux.Handle("GET /api/v1/reports/attendance", a.requireAuth(http.HandlerFunc(a.routerCfg.ReportHandler.Attendance)))

	// Settings (own profile)
	sth := a.routerCfg.SettingsHandler
	a.mux.Handle("GET /api/v1/settings/profile", a.requireAuth(http.HandlerFunc(sth.Get)))
	a.mux.Handle("PUT /api/v1/settings/profile", a.requireAuth(http.HandlerFunc(sth.Update)))

	// Realtime change feed
	a.mux.Handle("GET /api/v1/realtime", a.requireAuth(http.HandlerFunc(a.hub.ServeWS)))

	// ─────────────────────────────────────────────────────────────────────────
	// Static files
	// ─────────────────────────────────────────────────────────────────────────
	// Uploaded documents; the bucket is public, like the original storage.
	a.mux.Handle("GET /files/", http.StripPrefix("/files/", http.FileServer(http.Dir(a.store.Root()))))

	// SPA assets with index.html fallback so client-side routes deep-link.
	a.mux.HandleFunc("GET /", a.serveSPA)
}

// requireAuth wraps a handler to require authentication.
func (a *App) requireAuth(next http.Handler) http.Handler {
	return auth.RequireAuth(next)
}

// serveSPA serves the built frontend. Unknown paths fall back to index.html;
// the SPA router decides what to render (including its own redirects to
// /login for unauthenticated users).
func (a *App) serveSPA(w http.ResponseWriter, r *http.Request) {
	const root = "static"
	path := filepath.Join(root, filepath.Clean("/"+r.URL.Path))
	if info, err := os.Stat(path); err == nil && !info.IsDir() && !strings.HasSuffix(r.URL.Path, "/") {
		http.ServeFile(w, r, path)
		return
	}
	http.ServeFile(w, r, filepath.Join(root, "index.html"))
}
