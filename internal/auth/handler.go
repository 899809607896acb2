package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobboard/api-service/internal/web"
)

// Handler maps the auth REST routes onto the Service.
//
// Routes:
//
//	POST /auth/register → create user, returns session token
//	POST /auth/token    → login, returns session token
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the auth routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/auth/register", h.register)
	mux.HandleFunc("/auth/token", h.token)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var p RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		web.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if p.Username == "" || p.Password == "" {
		web.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	id, token, err := h.svc.Register(r.Context(), p)
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusCreated, map[string]any{"token": token, "user": id})
}

func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" || body.Password == "" {
		web.Error(w, "body must contain username and password", http.StatusBadRequest)
		return
	}

	id, token, err := h.svc.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			web.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"token": token, "user": id})
}
