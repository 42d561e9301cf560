// Package api exposes the reductions over HTTP: a time-correction
// endpoint, an observed-place endpoint and a calendar conversion, plus
// the usual health and metrics plumbing.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	astrom "github.com/star/astrom"
	"github.com/star/astrom/internal/auth"
	"github.com/star/astrom/internal/caldate"
	"github.com/star/astrom/internal/health"
	"github.com/star/astrom/internal/metrics"
)

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// Config holds the server's own settings, distinct from auth.
type Config struct {
	Addr       string
	TrustProxy bool
}

// NewServer creates a configured HTTP server.
func NewServer(cfg Config, logger *slog.Logger, authCfg auth.Config) *Server {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/timecorrect", timeCorrectHandler)
	mux.HandleFunc("GET /api/v1/observe", observeHandler)
	mux.HandleFunc("GET /api/v1/mjd", mjdHandler)

	// Build middleware chain: metrics -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = loggingMiddleware(logger, cfg.TrustProxy)(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeInputError maps a reduction error to a 400 with the offending
// field named, so clients can correct the request.
func writeInputError(w http.ResponseWriter, err error) {
	var rerr *astrom.RangeError
	if errors.As(err, &rerr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": rerr.Error(),
			"field": rerr.Field,
		})
		return
	}
	var derr *caldate.InvalidDateError
	if errors.As(err, &derr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": derr.Error(),
			"field": string(derr.Field),
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
}

// queryFloat parses a required float query parameter.
func queryFloat(r *http.Request, name string) (float64, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, errors.New("missing required parameter " + name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("invalid " + name + ": " + s)
	}
	return v, nil
}

// queryFloatDefault parses an optional float query parameter.
func queryFloatDefault(r *http.Request, name string, def float64) (float64, error) {
	if r.URL.Query().Get(name) == "" {
		return def, nil
	}
	return queryFloat(r, name)
}

// queryInt parses a required integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return 0, errors.New("missing required parameter " + name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid " + name + ": " + s)
	}
	return v, nil
}

// parseSiteTarget reads the site and target parameters shared by the
// two reduction endpoints. Space-motion parameters are optional and
// default to a fixed J2000 catalog position.
func parseSiteTarget(r *http.Request) (float64, astrom.Site, astrom.Target, error) {
	var site astrom.Site
	var target astrom.Target

	utc, err := queryFloat(r, "utc")
	if err != nil {
		return 0, site, target, err
	}
	if site.Longitude, err = queryFloat(r, "longitude"); err != nil {
		return 0, site, target, err
	}
	if site.Latitude, err = queryFloat(r, "latitude"); err != nil {
		return 0, site, target, err
	}
	if site.Height, err = queryFloatDefault(r, "height", 0); err != nil {
		return 0, site, target, err
	}

	if target.RA, err = queryFloat(r, "ra"); err != nil {
		return 0, site, target, err
	}
	if target.Dec, err = queryFloat(r, "dec"); err != nil {
		return 0, site, target, err
	}
	if target.PMRA, err = queryFloatDefault(r, "pmra", 0); err != nil {
		return 0, site, target, err
	}
	if target.PMDec, err = queryFloatDefault(r, "pmdec", 0); err != nil {
		return 0, site, target, err
	}
	if target.Parallax, err = queryFloatDefault(r, "parallax", 0); err != nil {
		return 0, site, target, err
	}
	if target.RV, err = queryFloatDefault(r, "rv", 0); err != nil {
		return 0, site, target, err
	}
	if target.Epoch, err = queryFloatDefault(r, "epoch", astrom.J2000Epoch); err != nil {
		return 0, site, target, err
	}

	return utc, site, target, nil
}

func timeCorrectHandler(w http.ResponseWriter, r *http.Request) {
	utc, site, target, err := parseSiteTarget(r)
	if err != nil {
		metrics.ObserveReduction("timecorrect", "invalid", 0)
		writeInputError(w, err)
		return
	}

	start := time.Now()
	tc, err := astrom.TimeCorrect(utc, site, target)
	if err != nil {
		metrics.ObserveReduction("timecorrect", "invalid", 0)
		writeInputError(w, err)
		return
	}
	metrics.ObserveReduction("timecorrect", "ok", time.Since(start))

	writeJSON(w, http.StatusOK, map[string]float64{
		"tt":     tc.TT,
		"tdb":    tc.TDB,
		"btdb":   tc.BTDB,
		"hutc":   tc.HUTC,
		"htdb":   tc.HTDB,
		"vhelio": tc.VHelio,
		"vbary":  tc.VBary,
	})
}

func observeHandler(w http.ResponseWriter, r *http.Request) {
	utc, site, target, err := parseSiteTarget(r)
	if err != nil {
		metrics.ObserveReduction("observe", "invalid", 0)
		writeInputError(w, err)
		return
	}

	atm := astrom.DefaultAtmosphere()
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"temperature", &atm.Temperature},
		{"pressure", &atm.Pressure},
		{"humidity", &atm.Humidity},
		{"wave", &atm.Wavelength},
	} {
		if *p.dst, err = queryFloatDefault(r, p.name, *p.dst); err != nil {
			metrics.ObserveReduction("observe", "invalid", 0)
			writeInputError(w, err)
			return
		}
	}

	start := time.Now()
	obs, err := astrom.ObservedPlace(utc, site, target, atm)
	if err != nil {
		metrics.ObserveReduction("observe", "invalid", 0)
		writeInputError(w, err)
		return
	}
	metrics.ObserveReduction("observe", "ok", time.Since(start))

	writeJSON(w, http.StatusOK, map[string]float64{
		"airmass":      obs.Airmass,
		"altitude":     obs.Altitude,
		"azimuth":      obs.Azimuth,
		"hour_angle":   obs.HourAngle,
		"parallactic":  obs.Parallactic,
		"refraction":   obs.Refraction,
		"zenith_dist":  obs.ZenithDist,
		"dec_observed": obs.DecObserved,
		"ra_observed":  obs.RAObserved,
	})
}

func mjdHandler(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		writeInputError(w, err)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		writeInputError(w, err)
		return
	}
	day, err := queryInt(r, "day")
	if err != nil {
		writeInputError(w, err)
		return
	}

	start := time.Now()
	mjd, err := astrom.CalendarToMJD(year, month, day)
	if err != nil {
		metrics.ObserveReduction("mjd", "invalid", 0)
		writeInputError(w, err)
		return
	}
	metrics.ObserveReduction("mjd", "ok", time.Since(start))

	writeJSON(w, http.StatusOK, map[string]float64{"mjd": mjd})
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			logger.Log(r.Context(), level, "request",
				"component", "api",
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", clientIP(r, trustProxy),
			)
		})
	}
}
