package controllers

import (
	"errors"

	"github.com/New7ech/API/database"
	"github.com/New7ech/API/middlewares"
	"github.com/New7ech/API/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategorieInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

func CreateCategorie(c *fiber.Ctx) error {
	var input CategorieInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	categorie := models.Categorie{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.FromCtx(c).Create(&categorie).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating category: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(categorie)
}

func GetCategories(c *fiber.Ctx) error {
	var categories []models.Categorie
	if err := database.FromCtx(c).Order("name").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

func GetCategorie(c *fiber.Ctx) error {
	var categorie models.Categorie
	if err := database.FromCtx(c).First(&categorie, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching category",
			"error":   err.Error(),
		})
	}
	return c.JSON(categorie)
}

func DeleteCategorie(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var categorie models.Categorie
	if err := db.First(&categorie, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Category not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting category",
			"error":   err.Error(),
		})
	}

	if err := db.Delete(&categorie).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting category: "+err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}
