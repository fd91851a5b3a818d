// Package httpapi exposes the application services over a REST JSON API.
// Every handler is a pure translation: parse request, call one domain
// operation, map the result or error to a status code and JSON body.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/celery8911/nest-aws/internal/apperr"
	app "github.com/celery8911/nest-aws/internal/app"
	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/app/metrics"
	"github.com/celery8911/nest-aws/pkg/logger"
)

// handler bundles HTTP endpoints for the application services.
type handler struct {
	app *app.Application
	log *logger.Logger
}

// NewHandler returns a router exposing the REST API.
func NewHandler(application *app.Application, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	h := &handler{app: application, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/", h.health).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthDetailed).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/items", h.listItems).Methods(http.MethodGet)
	r.HandleFunc("/items", h.createItem).Methods(http.MethodPost)
	r.HandleFunc("/items/{id}", h.deleteItem).Methods(http.MethodDelete)
	r.HandleFunc("/github/me", h.githubMe).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("route not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Health.Check())
}

func (h *handler) healthDetailed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Health.CheckDetailed())
}

func (h *handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.app.Items.FindAll(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *handler) createItem(w http.ResponseWriter, r *http.Request) {
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err != nil || mediaType != "application/json" {
			writeError(w, http.StatusUnsupportedMediaType, errors.New("Content-Type must be application/json"))
			return
		}
	}

	var input item.CreateInput
	if err := decodeJSON(r.Body, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	created, err := h.app.Items.Create(r.Context(), input)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed, err := h.app.Items.Remove(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removed)
}

func (h *handler) githubMe(w http.ResponseWriter, r *http.Request) {
	profile, err := h.app.GitHub.GetProfile(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	metrics.RecordUpstreamCall("ok")
	writeJSON(w, http.StatusOK, profile)
}

// writeDomainError maps a domain error kind to its HTTP representation.
func (h *handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *apperr.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation)
		return
	}

	var notFound *apperr.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound)
		return
	}

	var unavailable *apperr.DependencyUnavailableError
	if errors.As(err, &unavailable) {
		metrics.RecordUpstreamCall("unreachable")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": unavailable.Msg,
			"hint":  unavailable.Hint,
		})
		return
	}

	var upstream *apperr.UpstreamError
	if errors.As(err, &upstream) {
		metrics.RecordUpstreamCall("error")
		// Diagnostic passthrough: upstream status and body are preserved.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(upstream.StatusCode)
		_, _ = w.Write(upstream.Body)
		return
	}

	h.log.WithError(err).Errorf("unhandled error on %s %s", r.Method, r.URL.Path)
	writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
