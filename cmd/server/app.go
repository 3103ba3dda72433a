package main

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/protools/toolbox/internal/handlers"
	"github.com/protools/toolbox/internal/httpx"
	"github.com/protools/toolbox/internal/invoice"
	"github.com/protools/toolbox/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
	db  *gorm.DB
}

// NewApp creates a new application with all routes configured.
func NewApp(db *gorm.DB) *App {
	app := &App{mux: http.NewServeMux(), db: db}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	withRecover(withAccessLog(a.mux)).ServeHTTP(w, r)
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	calc := handlers.NewCalcHandler()
	inv := handlers.NewInvoiceHandler(invoice.NewService(store.NewRecordRepo(a.db)))
	prof := handlers.NewProfileHandler(store.NewProfileRepo(a.db))

	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /healthz", a.health)

	// Calculators (stateless)
	a.mux.HandleFunc("POST /calc/interest", calc.Interest)
	a.mux.HandleFunc("POST /calc/emi", calc.EMI)
	a.mux.HandleFunc("POST /calc/sip", calc.SIP)
	a.mux.HandleFunc("POST /calc/totals", calc.Totals)

	// Invoice records
	a.mux.HandleFunc("GET /invoices", inv.List)
	a.mux.HandleFunc("POST /invoices", inv.Save)
	a.mux.HandleFunc("POST /invoices/delete", inv.Delete)
	a.mux.HandleFunc("GET /invoices/next-number", inv.NextNumber)
	a.mux.HandleFunc("GET /invoices/pdf", inv.PDF)

	// Profiles and pickers
	a.mux.HandleFunc("GET /profile/business", prof.Business)
	a.mux.HandleFunc("PUT /profile/business", prof.SaveBusiness)
	a.mux.HandleFunc("GET /profile/inventory", prof.Inventory)
	a.mux.HandleFunc("POST /profile/inventory", prof.AddInventory)
	a.mux.HandleFunc("POST /profile/inventory/delete", prof.DeleteInventory)
	a.mux.HandleFunc("GET /profile/buyers", prof.Buyers)
	a.mux.HandleFunc("POST /profile/buyers", prof.AddBuyer)
	a.mux.HandleFunc("POST /profile/buyers/delete", prof.DeleteBuyer)
}

// health reports liveness plus database reachability.
func (a *App) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := a.db.Exec("SELECT 1").Error; err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	httpx.JSON(w, code, map[string]string{"status": status})
}

// withAccessLog logs each request with method, path, status and latency.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// withRecover converts handler panics into a 500 instead of killing the
// connection.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Bytes("stack", debug.Stack()).Msg("handler panic")
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
