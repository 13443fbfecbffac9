package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Exercise is one recorded exercise event owned by a user. UserID is kept as
// plain text rather than a foreign key: entries reference users by id but the
// store does not enforce the relation.
type Exercise struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      string    `json:"userId" gorm:"index;not null"`
	Description string    `json:"description" gorm:"index"`
	Duration    float64   `json:"duration"`
	Date        time.Time `json:"date" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
