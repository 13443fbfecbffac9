package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/magno-tech/exercise-tracker/internal/logger"
	"github.com/magno-tech/exercise-tracker/internal/models"
	"github.com/magno-tech/exercise-tracker/internal/utils"
)

const defaultLogLimit = 10

// POST /api/exercise/add
// Validation short-circuits in order: date shape, calendar validity,
// duration, user existence. Each failure is a soft error in a 200 payload.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	b, err := decodeBody(r)
	if err != nil {
		utils.WriteText(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rawDate := b.str("date")
	matched, ok := utils.ExtractDate(rawDate)
	if !ok {
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "date should be expressed in yyyy-mm-dd format, input: " + rawDate,
		})
		return
	}

	date, err := utils.ParseDate(matched)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "date should be a valid date yyyy-mm-dd, input: " + rawDate,
		})
		return
	}

	rawDuration := b.str("duration")
	duration, err := strconv.ParseFloat(strings.TrimSpace(rawDuration), 64)
	if err != nil {
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "duration should be expressed in numbers, input: " + rawDuration,
		})
		return
	}

	userID := b.str("userId")
	user, err := h.Users.FindByID(r.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteJSON(w, http.StatusOK, UserNotFoundResponse{
			Username: "",
			Found:    "false",
			Error:    "User not found, create an user first.",
		})
		return
	}
	if err != nil {
		logger.Log.Errorw("find user", "userId", userID, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// An entry with the same description anywhere in the store short-circuits
	// the insert and is echoed back instead.
	description := b.str("description")
	existing, err := h.Exercises.FindByDescription(r.Context(), description)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, DuplicateExerciseResponse{
			ID:          existing.ID.String(),
			User:        user.Username,
			Description: existing.Description,
			Duration:    existing.Duration,
			Date:        existing.Date,
			Found:       "true",
		})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// new description, insert below
	default:
		logger.Log.Errorw("find exercise", "description", description, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	entry := &models.Exercise{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        date,
	}
	if err := h.Exercises.Create(r.Context(), entry); err != nil {
		logger.Log.Errorw("create exercise", "userId", userID, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.WriteJSON(w, http.StatusOK, ExerciseCreatedResponse{
		Username:    user.Username,
		Description: entry.Description,
		Duration:    entry.Duration,
		UserID:      userID,
		Date:        utils.FormatDateString(entry.Date),
	})
}

// GET /api/exercise/delete-exercise/{exercise}
// Deletion is keyed by description alone, regardless of owner, and reports
// success whether or not anything matched.
func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	description := r.PathValue("exercise")

	if err := h.Exercises.DeleteByDescription(r.Context(), description); err != nil {
		logger.Log.Errorw("delete exercise", "description", description, "error", err)
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "exercise not found, description: " + description,
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, SuccessResponse{
		Successful: "exercise deleted from db, description: " + description,
	})
}

// GET /api/exercise/log?userId=&from=&to=&limit=
func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")

	user, err := h.Users.FindByID(r.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.WriteJSON(w, http.StatusOK, ErrorResponse{
			Error: "userId not found in db, userId: " + userID,
		})
		return
	}
	if err != nil {
		logger.Log.Errorw("find user", "userId", userID, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	// Window defaults: the last seven calendar days, up to now. Unparsable
	// bounds fall back to the defaults.
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -7)
	if t, err := utils.ParseDate(q.Get("from")); err == nil {
		from = t
	}
	to := now
	if t, err := utils.ParseDate(q.Get("to")); err == nil {
		to = t
	}

	limit := defaultLogLimit
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		limit = n
	}

	entries, err := h.Exercises.FindForUser(r.Context(), userID, from, to, limit)
	if err != nil {
		logger.Log.Errorw("query exercises", "userId", userID, "error", err)
		utils.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	entryLog := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		entryLog = append(entryLog, LogEntry{
			UserID:      e.UserID,
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}

	utils.WriteJSON(w, http.StatusOK, LogResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Count:    len(entryLog),
		Log:      entryLog,
	})
}
