package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Email          string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone          string `gorm:"size:20" json:"phone"`
	Specialization string `gorm:"size:50" json:"specialization"`
	Qualification  string `gorm:"size:100" json:"qualification"`
	ExperienceYrs  int    `json:"experience_years"`

	Status string `gorm:"size:20;default:'ACTIVE'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
