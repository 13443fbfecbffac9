package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/magno-tech/exercise-tracker/internal/repositories"
	"github.com/magno-tech/exercise-tracker/internal/utils"
)

// Handler carries the repositories the routes operate on.
type Handler struct {
	Users     *repositories.UserRepository
	Exercises *repositories.ExerciseRepository

	validate *validator.Validate
}

func New(users *repositories.UserRepository, exercises *repositories.ExerciseRepository) *Handler {
	return &Handler{
		Users:     users,
		Exercises: exercises,
		validate:  validator.New(),
	}
}

// GET /developer
func (h *Handler) Developer(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, DeveloperResponse{
		Developer: "Leo Vargas",
		Company:   "Magno Technologies",
	})
}

// body holds a decoded request body. The API accepts both JSON and
// urlencoded forms, so values are kept loose and read back as text.
type body map[string]any

func decodeBody(r *http.Request) (body, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var b body
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		if err := dec.Decode(&b); err != nil {
			if errors.Is(err, io.EOF) {
				return body{}, nil
			}
			return nil, err
		}
		if b == nil {
			b = body{}
		}
		return b, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	b := body{}
	for key, values := range r.PostForm {
		if len(values) > 0 {
			b[key] = values[0]
		}
	}
	return b, nil
}

// str renders a field the way a form parser would have: numbers become
// their text form, absent fields become the empty string.
func (b body) str(key string) string {
	v, ok := b[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// validationMessage reports the first failed rule as plain text for the
// 400 channel.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		if verrs[0].Tag() == "required" {
			return field + " is required"
		}
		return field + " is invalid"
	}
	return err.Error()
}
