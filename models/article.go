package models

import "time"

type Article struct {
	Id            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	Description   string    `json:"description"`
	Prix          float64   `json:"prix" gorm:"check:prix >= 0"`
	Quantite      int       `json:"quantite" gorm:"check:quantite >= 0"`
	CategoryID    *uint     `json:"category_id" gorm:"index"`
	FournisseurID *uint     `json:"fournisseur_id" gorm:"index"`
	EmplacementID *uint     `json:"emplacement_id" gorm:"index"`
	CreatedBy     *string   `json:"created_by" gorm:"size:36"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
