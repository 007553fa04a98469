package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/secureapp/secureapp/internal/httpx"
)

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse returns the TOTP secret so the client can enroll an
// authenticator app.
type RegisterResponse struct {
	Message     string `json:"message"`
	TwoFASecret string `json:"2fa_secret"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	TwoFACode string `json:"2fa_code"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Handler exposes the authentication endpoints.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, logger: logger}
}

// Register attaches the unauthenticated auth routes to the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Get("/qr_code/{username}", h.qrCode)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	secret, err := h.service.Register(r.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, ErrMissingFields):
		httpx.Message(w, http.StatusBadRequest, "username and password are required")
		return
	case errors.Is(err, ErrUsernameTaken):
		httpx.Message(w, http.StatusConflict, "username already taken")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "register failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, RegisterResponse{
		Message:     "User registered successfully!",
		TwoFASecret: secret,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password, req.TwoFACode)
	if err != nil {
		// Same status and body for every failure cause.
		if !errors.Is(err, ErrInvalidCredentials) {
			h.logger.ErrorContext(r.Context(), "login failed", slog.Any("error", err))
		}
		httpx.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token})
}

func (h *Handler) qrCode(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = parsed
		}
	}

	png, err := h.service.ProvisioningQR(r.Context(), username, size)
	switch {
	case errors.Is(err, ErrUserNotFound):
		httpx.Message(w, http.StatusNotFound, "User not found")
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "qr code failed", slog.Any("error", err))
		httpx.Message(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
