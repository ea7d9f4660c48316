package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	DateOfBirth string `gorm:"size:10" json:"date_of_birth"`
	Gender      string `gorm:"size:20" json:"gender"`
	BloodGroup  string `gorm:"size:10" json:"blood_group"`
	Address     string `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
