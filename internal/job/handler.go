package job

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobboard/api-service/internal/auth"
	"jobboard/api-service/internal/web"
)

// Handler maps the jobs REST routes onto the Service.
//
// Routes:
//
//	GET    /jobs          → list (filter via query params)
//	POST   /jobs          → create            [admin]
//	GET    /jobs/{id}     → get
//	PATCH  /jobs/{id}     → partial update    [admin]
//	DELETE /jobs/{id}     → delete            [admin]
type Handler struct {
	svc   *Service
	guard auth.Guard
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service, guard auth.Guard) *Handler {
	return &Handler{svc: svc, guard: guard}
}

// RegisterRoutes mounts the jobs routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/jobs", h.handleCollection)
	mux.HandleFunc("/jobs/", h.handleItem)
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
	// Parse /jobs/{id}
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 2 {
		web.Error(w, "invalid path", http.StatusNotFound)
		return
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		web.Error(w, "job id must be an integer", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPatch:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	// All query params flow into the filter mapping; the service rejects
	// anything outside the recognized set. Numeric and boolean keys are
	// converted here since query params arrive as strings.
	filter := map[string]any{}
	for key, vals := range r.URL.Query() {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case "minSalary":
			n, err := strconv.Atoi(vals[0])
			if err != nil {
				web.Error(w, "minSalary must be an integer", http.StatusBadRequest)
				return
			}
			filter[key] = n
		case "hasEquity":
			v, err := strconv.ParseBool(vals[0])
			if err != nil {
				web.Error(w, "hasEquity must be a boolean", http.StatusBadRequest)
				return
			}
			filter[key] = v
		default:
			filter[key] = vals[0]
		}
	}

	jobs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"jobs": jobs})
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
	if p.Title == "" || p.CompanyHandle == "" {
		web.Error(w, "title and companyHandle are required", http.StatusBadRequest)
		return
	}

	j, err := h.svc.Create(r.Context(), p)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, map[string]any{"job": j})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, id int64) {
	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"job": j})
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, id int64) {
	if !h.requireAdmin(w, r) {
		return
	}

	// Decode into a map so an explicit JSON null survives as a nil value
	// and clears the column.
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		web.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	j, err := h.svc.Update(r.Context(), id, fields)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"job": j})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, id int64) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]string{"deleted": strconv.FormatInt(id, 10)})
}

// requireAdmin resolves the caller's identity and enforces the elevated
// privilege needed for mutations.
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
