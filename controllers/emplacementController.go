package controllers

import (
	"errors"

	"github.com/New7ech/API/database"
	"github.com/New7ech/API/middlewares"
	"github.com/New7ech/API/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EmplacementInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

func CreateEmplacement(c *fiber.Ctx) error {
	var input EmplacementInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	emplacement := models.Emplacement{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.FromCtx(c).Create(&emplacement).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating location: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(emplacement)
}

func GetEmplacements(c *fiber.Ctx) error {
	var emplacements []models.Emplacement
	if err := database.FromCtx(c).Order("name").Find(&emplacements).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching locations",
			"error":   err.Error(),
		})
	}
	return c.JSON(emplacements)
}

func GetEmplacement(c *fiber.Ctx) error {
	var emplacement models.Emplacement
	if err := database.FromCtx(c).First(&emplacement, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Location not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching location",
			"error":   err.Error(),
		})
	}
	return c.JSON(emplacement)
}

func DeleteEmplacement(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var emplacement models.Emplacement
	if err := db.First(&emplacement, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Location not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting location",
			"error":   err.Error(),
		})
	}

	if err := db.Delete(&emplacement).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting location: "+err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
