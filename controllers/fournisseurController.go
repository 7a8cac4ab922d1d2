package controllers

import (
	"errors"

	"github.com/New7ech/API/database"
	"github.com/New7ech/API/middlewares"
	"github.com/New7ech/API/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FournisseurInput struct {
	Name          string `json:"name" validate:"required,max=255"`
	NomEntreprise string `json:"nom_entreprise" validate:"max=255"`
	Telephone     string `json:"telephone"`
	Email         string `json:"email" validate:"required,email"`
	Adresse       string `json:"adresse"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
	Description   string `json:"description"`
}

func CreateFournisseur(c *fiber.Ctx) error {
	var input FournisseurInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	fournisseur := models.Fournisseur{
		Name:          input.Name,
		NomEntreprise: input.NomEntreprise,
		Telephone:     input.Telephone,
		Email:         input.Email,
		Adresse:       input.Adresse,
		Ville:         input.Ville,
		Pays:          input.Pays,
		Description:   input.Description,
	}
	if err := database.FromCtx(c).Create(&fournisseur).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating supplier: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fournisseur)
}

func GetFournisseurs(c *fiber.Ctx) error {
	var fournisseurs []models.Fournisseur
	if err := database.FromCtx(c).Order("name").Find(&fournisseurs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching suppliers",
			"error":   err.Error(),
		})
	}
	return c.JSON(fournisseurs)
}

func GetFournisseur(c *fiber.Ctx) error {
	var fournisseur models.Fournisseur
	if err := database.FromCtx(c).First(&fournisseur, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching supplier",
			"error":   err.Error(),
		})
	}
	return c.JSON(fournisseur)
}

func DeleteFournisseur(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var fournisseur models.Fournisseur
	if err := db.First(&fournisseur, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Supplier not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting supplier",
			"error":   err.Error(),
		})
	}

	if err := db.Delete(&fournisseur).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting supplier: "+err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
