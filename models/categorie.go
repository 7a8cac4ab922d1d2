package models

import "time"

type Categorie struct {
	Id          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;unique"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GORM would otherwise guess "categorie" -> "categories" anyway; keep it explicit.
func (Categorie) TableName() string {
	return "categories"
}
