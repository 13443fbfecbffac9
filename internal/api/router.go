package api

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/magno-tech/exercise-tracker/internal/api/handlers"
	"github.com/magno-tech/exercise-tracker/internal/api/middleware"
	"github.com/magno-tech/exercise-tracker/internal/utils"
)

// NewRouter wires the exercise tracker routes behind CORS and request
// logging.
func NewRouter(h *handlers.Handler, corsOptions cors.Options) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /developer", h.Developer)

	mux.HandleFunc("POST /api/exercise/new-user", h.CreateUser)
	mux.HandleFunc("POST /api/exercise/add", h.AddExercise)
	mux.HandleFunc("GET /api/exercise/delete-user/{username}", h.DeleteUser)
	mux.HandleFunc("GET /api/exercise/delete-exercise/{exercise}", h.DeleteExercise)
	mux.HandleFunc("GET /api/exercise/users", h.ListUsers)
	mux.HandleFunc("GET /api/exercise/log", h.GetLog)

	// Anything else is a plain-text 404.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteText(w, http.StatusNotFound, "not found")
	})

	c := cors.New(corsOptions)
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
