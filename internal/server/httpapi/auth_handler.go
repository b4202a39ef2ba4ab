package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/server/auth"
	"github.com/crewhive/crewhive/internal/server/store"
)

type AuthHandler struct {
	logger   *zap.Logger
	users    *store.UserStore
	tokens   *auth.Manager
	validate *validator.Validate
}

func NewAuthHandler(users *store.UserStore, tokens *auth.Manager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		users:    users,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/sign-in", h.SignIn)
	r.Post("/refresh", h.Refresh)
	return r
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	user, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		h.logger.Warn("sign-in rejected", zap.String("email", req.Email))
		WriteError(w, http.StatusUnauthorized, ErrorBody{
			Code: CodeUnauthorized, Message: "invalid credentials",
		})
		return
	}

	access, refresh, err := h.tokens.IssuePair(user)
	if err != nil {
		h.logger.Error("failed to issue token pair", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, ErrorBody{
			Code: CodeInternal, Message: "internal server error",
		})
		return
	}

	WriteJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !decodeStrict(w, r, h.validate, &req) {
		return
	}

	userID, err := h.tokens.RedeemRefresh(req.RefreshToken)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, ErrorBody{
			Code: CodeUnauthorized, Message: "invalid refresh token",
		})
		return
	}

	user, err := h.users.FindByID(userID)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, ErrorBody{
			Code: CodeUnauthorized, Message: "unknown user",
		})
		return
	}

	access, refresh, err := h.tokens.IssuePair(user)
	if err != nil {
		h.logger.Error("failed to rotate token pair", zap.Error(err))
		WriteError(w, http.StatusInternalServerError, ErrorBody{
			Code: CodeInternal, Message: "internal server error",
		})
		return
	}

	WriteJSON(w, http.StatusOK, tokenPairResponse{AccessToken: access, RefreshToken: refresh})
}
