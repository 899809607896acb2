package company

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobboard/api-service/internal/auth"
	"jobboard/api-service/internal/web"
)

// Handler maps the companies REST routes onto the Service.
//
// Routes:
//
//	GET    /companies            → list (filter via query params)
//	POST   /companies            → create            [admin]
//	GET    /companies/{handle}   → get with jobs
//	PATCH  /companies/{handle}   → partial update    [admin]
//	DELETE /companies/{handle}   → delete            [admin]
type Handler struct {
	svc   *Service
	guard auth.Guard
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service, guard auth.Guard) *Handler {
	return &Handler{svc: svc, guard: guard}
}

// RegisterRoutes mounts the companies routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/companies", h.handleCollection)
	mux.HandleFunc("/companies/", h.handleItem)
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleItem(w http.ResponseWriter, r *http.Request) {
	// Parse /companies/{handle}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		web.Error(w, "invalid path", http.StatusNotFound)
		return
	}
	handle := parts[1]

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, handle)
	case http.MethodPatch:
		h.update(w, r, handle)
	case http.MethodDelete:
		h.delete(w, r, handle)
	default:
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	// Every query param goes into the filter mapping verbatim; the service
	// owns the recognized-key semantics. Only the numeric bounds are
	// converted here, since query params arrive as strings.
	filter := map[string]any{}
	for key, vals := range r.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case "minEmployees", "maxEmployees":
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				web.Error(w, key+" must be an integer", http.StatusBadRequest)
				return
			}
			filter[key] = n
		default:
			filter[key] = vals[0]
		}
	}

	companies, err := h.svc.List(r.Context(), filter)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"companies": companies})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var p CreateParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		web.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if p.Handle == "" || p.Name == "" {
		web.Error(w, "handle and name are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), p)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, map[string]any{"company": c})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, handle string) {
	c, err := h.svc.Get(r.Context(), handle)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"company": c})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, handle string) {
	if !h.requireAdmin(w, r) {
		return
	}

	// Decode into a map so an explicit JSON null survives as a nil value —
	// that is how a caller clears a nullable column.
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		web.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Update(r.Context(), handle, fields)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"company": c})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, handle string) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.svc.Delete(r.Context(), handle); err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]string{"deleted": handle})
}

// requireAdmin resolves the caller's identity and enforces the elevated
// privilege needed for mutations. Reads stay open; building itself is
// authorization-agnostic.
func (h *Handler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	id, err := h.guard.Identify(r.Context(), r)
	if err != nil {
		web.Error(w, "authentication required", http.StatusUnauthorized)
		return false
	}
	if !id.IsAdmin {
		web.Error(w, "admin privileges required", http.StatusForbidden)
		return false
	}
	return true
}
