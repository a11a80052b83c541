// Package server exposes a cook scheduler over HTTP: cooked package requests,
// book sessions, status and dirty notifications.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/cook/internal/core/ports"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Options configures the router.
type Options struct {
	// AccessLog receives one line per request when set.
	AccessLog *zerolog.Logger
	// CORSOrigins enables CORS for the listed origins.
	CORSOrigins []string
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
	// Instrument wraps every route when set.
	Instrument func(http.Handler) http.Handler
}

type handlers struct {
	svc ports.CookService
}

// NewRouter returns the HTTP handler serving svc.
func NewRouter(svc ports.CookService, opts Options) http.Handler {
	h := &handlers{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	if opts.AccessLog != nil {
		r.Use(AccessLog(*opts.AccessLog))
	}
	r.Use(middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{cookv1.PackageHeader, cookv1.UnsolicitedHeader},
			MaxAge:         300,
		}))
	}
	if opts.Instrument != nil {
		r.Use(opts.Instrument)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/packages/{platform}/*", h.getPackage)
		r.Get("/status", h.getStatus)
		r.Get("/manifest/{platform}", h.getManifest)
		r.Post("/book", h.startBook)
		r.Get("/book/{id}", h.getBook)
		r.Delete("/book/{id}", h.cancelBook)
		r.Post("/dirty", h.markDirty)
	})
	return r
}

func (h *handlers) getPackage(w http.ResponseWriter, r *http.Request) {
	platform := domain.NewPlatformID(chi.URLParam(r, "platform"))
	path := "/" + strings.TrimPrefix(chi.URLParam(r, "*"), "/")

	resp, err := h.svc.HandleFileRequest(r.Context(), path, platform)
	if resp != nil {
		for _, pkg := range resp.Unsolicited {
			w.Header().Add(cookv1.UnsolicitedHeader, pkg.String())
		}
		w.Header().Set(cookv1.PackageHeader, resp.Package.String())
	}
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Data)
}

func (h *handlers) getStatus(w http.ResponseWriter, _ *http.Request) {
	st := h.svc.Status()
	writeJSON(w, http.StatusOK, cookv1.StatusResponse{
		Pending:   st.Pending,
		HasErrors: st.HasErrors,
		State:     st.State.String(),
		Session:   st.Session,
	})
}

func (h *handlers) getManifest(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	pkgs := h.svc.CookedManifestFor(domain.NewPlatformID(platform))
	names := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		names = append(names, p.String())
	}
	writeJSON(w, http.StatusOK, cookv1.ManifestResponse{Platform: platform, Packages: names})
}

func (h *handlers) startBook(w http.ResponseWriter, r *http.Request) {
	var req cookv1.BookRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := h.svc.StartCookByTheBook(r.Context(), BookOptions(req))
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, cookv1.BookResponse{Session: id})
}

func (h *handlers) getBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, cookv1.SessionResponse{Session: id, Running: h.svc.IsRunning(id)})
}

func (h *handlers) cancelBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Cancel(id); err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, cookv1.SessionResponse{Session: id, Running: true})
}

func (h *handlers) markDirty(w http.ResponseWriter, r *http.Request) {
	var req cookv1.DirtyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	pkgs := make([]domain.PackageID, 0, len(req.Packages))
	for _, p := range req.Packages {
		id := domain.NewPackageID(p)
		if id.IsZero() {
			writeJSONError(w, http.StatusBadRequest, domain.ErrInvalidPackagePath.Error()+": "+p)
			return
		}
		pkgs = append(pkgs, id)
	}
	h.svc.MarkPackageDirty(r.Context(), pkgs...)
	writeJSON(w, http.StatusOK, cookv1.DirtyResponse{Marked: len(pkgs)})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// BookOptions converts a book request into scheduler options.
func BookOptions(req cookv1.BookRequest) domain.BookOptions {
	opts := domain.BookOptions{
		Filter: domain.AssetFilter{
			Maps:        req.Maps,
			AllMaps:     req.AllMaps,
			Directories: req.Directories,
			Packages:    req.Packages,
		},
		DLCName:            req.DLC,
		BasedOnRelease:     req.BasedOnRelease,
		CreateRelease:      req.CreateRelease,
		Iterative:          req.Iterative,
		Children:           req.Children,
		MapDependencyGraph: req.MapDependencyGraph,
	}
	for _, p := range req.Platforms {
		if id := domain.NewPlatformID(p); id.String() != "" {
			opts.Platforms = append(opts.Platforms, id)
		}
	}
	return opts
}
