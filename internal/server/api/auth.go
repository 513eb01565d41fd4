package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/services"
)

// AuthHandler serves the identity endpoints.
type AuthHandler struct {
	users  *services.UserService
	logger logging.Logger
}

func NewAuthHandler(users *services.UserService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{users: users, logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type signUpResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type meResponse struct {
	Username string `json:"username"`
}

// SignUp answers POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, common.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "username already taken")
		default:
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, signUpResponse{ID: user.ID, Username: user.Username})
}

// SignIn answers POST /auth/signin with a session token.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidLogin) {
			writeError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{Token: token, Username: req.Username})
}

// SignOut answers POST /auth/signout. Session tokens are stateless, so
// there is nothing to revoke; forgetting the token is the client's job.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Me answers GET /auth/me with the acting identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, meResponse{Username: UsernameFromContext(r.Context())})
}
