package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/attendly-hr/attendly-backend-go/internal/domain/auth"
	"github.com/attendly-hr/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly-hr/attendly-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.Success(w, result)
}

func (h *AuthHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(result.RefreshToken, result.RefreshTokenExpiresAt))
	response.Success(w, result)
}

func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	expired := h.jwtService.RefreshTokenCookie("", time.Now().Add(-time.Hour).Unix())
	expired.MaxAge = -1
	http.SetCookie(w, expired)

	response.Success(w, map[string]string{"message": "Logged out"})
}

func (h *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	result, err := h.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
