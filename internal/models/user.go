package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       string `gorm:"type:varchar(36);primarykey" json:"id"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`

	// Relations
	Exercises []Exercise `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns a UUID when none was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
