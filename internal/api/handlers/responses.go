package handlers

import "time"

// Response bodies are declared per endpoint so the field names the API has
// always exposed stay checked at compile time. The `_id` naming and the
// textual "true"/"false" values of found are part of the wire contract.

type DeveloperResponse struct {
	Developer string `json:"developer"`
	Company   string `json:"company"`
}

// ErrorResponse is a soft error: sent with HTTP 200, callers inspect the
// payload rather than the status code.
type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Successful string `json:"successful"`
}

type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type UserNotFoundResponse struct {
	Username string `json:"username"`
	Found    string `json:"found"`
	Error    string `json:"error"`
}

// DuplicateExerciseResponse echoes the already-stored entry when an add
// collides on description.
type DuplicateExerciseResponse struct {
	ID          string    `json:"id"`
	User        string    `json:"user"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
	Found       string    `json:"found"`
}

// ExerciseCreatedResponse renders the date as a calendar string, unlike the
// log listing which keeps the stored form.
type ExerciseCreatedResponse struct {
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	UserID      string  `json:"_id"`
	Date        string  `json:"date"`
}

type LogEntry struct {
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date"`
}

type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
