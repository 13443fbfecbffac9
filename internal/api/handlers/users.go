package handlers

import (
	"net/http"

	"github.com/magno-tech/exercise-tracker/internal/logger"
	"github.com/magno-tech/exercise-tracker/internal/utils"
)

type createUserInput struct {
	Username string `validate:"required"`
}

// POST /api/exercise/new-user
// Registration is idempotent by name: posting an existing username returns
// the stored record unchanged.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBody(r)
	if err != nil {
		utils.WriteText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := createUserInput{Username: b.str("username")}
	if err := h.validate.Struct(input); err != nil {
		utils.WriteText(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.Users.FindOrCreate(r.Context(), input.Username)
	if err != nil {
		logger.Log.Errorw("create user", "username", input.Username, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
	})
}

// GET /api/exercise/delete-user/{username}
// The success payload names the username whether or not anything matched.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")

	if err := h.Users.DeleteByUsername(r.Context(), username); err != nil {
		logger.Log.Errorw("delete user", "username", username, "error", err)
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "username not found, username: " + username,
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, SuccessResponse{
		Successful: "username deleted from db, username: " + username,
	})
}

// GET /api/exercise/users
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.ListAll(r.Context())
	if err != nil {
		logger.Log.Errorw("list users", "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID.String(), Username: u.Username})
	}
	utils.WriteJSON(w, http.StatusOK, UsersResponse{Users: out})
}
