package models

import "time"

type Fournisseur struct {
	Id            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"size:255;not null"`
	NomEntreprise string    `json:"nom_entreprise" gorm:"size:255"`
	Telephone     string    `json:"telephone"`
	Email         string    `json:"email" gorm:"unique;not null"`
	Adresse       string    `json:"adresse"`
	Ville         string    `json:"ville"`
	Pays          string    `json:"pays"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
