package identity

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopmint/shopmint/internal/domain"
	"github.com/shopmint/shopmint/internal/pkg/httputil"
)

// Handler handles HTTP requests for the identity module.
type Handler struct {
	service *Service
}

// NewHandler creates a new identity handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers public identity routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
	})
}

// RegisterProtectedRoutes registers routes that require authentication.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/auth/me", h.Me)
}

type registerResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	User    *domain.PublicUser `json:"user"`
}

// Register handles POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, registerResponse{
		Success: true,
		Message: "User registered successfully",
		User:    user.Public(),
	})
}

type loginResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    *domain.PublicUser `json:"user"`
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user.Public(),
	})
}

type meResponse struct {
	Success bool               `json:"success"`
	User    *domain.PublicUser `json:"user"`
}

// Me handles GET /auth/me. The auth middleware attaches the token claims;
// the full record is re-resolved from the store by id.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r.Context())
	if userID == "" {
		httputil.Error(w, http.StatusUnauthorized, "Authorization token missing")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			httputil.Error(w, http.StatusNotFound, "No user found")
			return
		}
		h.handleServiceError(r, w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, meResponse{
		Success: true,
		User:    user.Public(),
	})
}

var errorMappings = []httputil.ErrorMapping{
	{Error: ErrEmailExists, Status: http.StatusBadRequest},
	{Error: ErrUserNotFound, Status: http.StatusBadRequest},
	{Error: ErrInvalidPassword, Status: http.StatusBadRequest},
}

func (h *Handler) handleServiceError(r *http.Request, w http.ResponseWriter, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		httputil.Error(w, http.StatusBadRequest, vErr.Message)
		return
	}
	httputil.HandleError(r.Context(), w, err, errorMappings)
}
