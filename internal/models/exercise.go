package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// MinDuration is the smallest duration, in minutes, the store accepts.
const MinDuration = 0.01

// ErrDurationTooSmall is returned by the storage layer when an exercise
// violates the duration floor.
var ErrDurationTooSmall = errors.New("duration below minimum")

type Exercise struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	UserID      string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	Description string    `gorm:"type:varchar(255);not null" json:"description"`
	Duration    float64   `gorm:"not null;check:duration >= 0.01" json:"duration"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate enforces the duration floor before the row is written. The
// column CHECK clause backs this for writes that bypass the hook.
func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.Duration < MinDuration {
		return ErrDurationTooSmall
	}
	return nil
}
