package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/crewhive/crewhive/internal/server/store"
)

type UsersHandler struct {
	logger *zap.Logger
	users  *store.UserStore
}

func NewUsersHandler(users *store.UserStore, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{logger: logger, users: users}
}

func (h *UsersHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/me", h.Me)
	return r
}

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CompanyID int64  `json:"companyId"`
}

func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, ErrorBody{Code: CodeUnauthorized, Message: "missing claims"})
		return
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, ErrorBody{Code: CodeUnauthorized, Message: "malformed subject"})
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		WriteError(w, http.StatusNotFound, ErrorBody{Code: CodeNotFound, Message: "no such user"})
		return
	}

	WriteJSON(w, http.StatusOK, userResponse{
		ID: user.ID, Username: user.Username, Email: user.Email,
		Role: user.Role, CompanyID: user.CompanyID,
	})
}
