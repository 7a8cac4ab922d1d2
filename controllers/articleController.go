package controllers

import (
	"errors"

	"github.com/New7ech/API/database"
	"github.com/New7ech/API/middlewares"
	"github.com/New7ech/API/models"
	"github.com/New7ech/API/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const articlesPerPage = 15

type StoreArticleInput struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   string   `json:"description"`
	Prix          *float64 `json:"prix" validate:"required,gte=0"`
	Quantite      *int     `json:"quantite" validate:"required,gte=0"`
	CategoryID    *uint    `json:"category_id"`
	FournisseurID *uint    `json:"fournisseur_id"`
	EmplacementID *uint    `json:"emplacement_id"`
}

type UpdateArticleInput struct {
	Name          *string  `json:"name" validate:"omitnil,min=1,max=255"`
	Description   *string  `json:"description"`
	Prix          *float64 `json:"prix" validate:"omitnil,gte=0"`
	Quantite      *int     `json:"quantite" validate:"omitnil,gte=0"`
	CategoryID    *uint    `json:"category_id"`
	FournisseurID *uint    `json:"fournisseur_id"`
	EmplacementID *uint    `json:"emplacement_id"`
}

// GetArticles lists articles newest-first, optionally filtered by ?search=
// across name and description, 15 per page (?page=).
func GetArticles(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	q := db.Model(&models.Article{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var articles []models.Article
	page := utils.ParseIntDefault(c.Query("page"), 1)
	result, err := utils.Paginate(q, "created_at DESC, id DESC", page, articlesPerPage, &articles)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching articles",
			"error":   err.Error(),
		})
	}

	return c.JSON(result)
}

func CreateArticle(c *fiber.Ctx) error {
	var input StoreArticleInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizeDTO(&input)
	utils.NormalizePtrDTO(&input)
	if err := middlewares.ValidateStruct(&input); err != nil {
		return err
	}

	db := database.FromCtx(c)
	errs, err := checkReferences(db, input.CategoryID, input.FournisseurID, input.EmplacementID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating article",
			"error":   err.Error(),
		})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	article := models.Article{
		Name:          input.Name,
		Description:   input.Description,
		Prix:          *input.Prix,
		Quantite:      *input.Quantite,
		CategoryID:    input.CategoryID,
		FournisseurID: input.FournisseurID,
		EmplacementID: input.EmplacementID,
	}
	if userID, _ := c.Locals("userID").(string); userID != "" {
		article.CreatedBy = &userID
	}

	if err := db.Create(&article).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating article: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func GetArticle(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var article models.Article
	if err := db.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Article not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error fetching article",
			"error":   err.Error(),
		})
	}

	return c.JSON(article)
}

// UpdateArticle applies partial updates: only fields present in the payload change.
func UpdateArticle(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var article models.Article
	if err := db.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Article not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating article",
			"error":   err.Error(),
		})
	}

	// TODO: restrict updates to article.CreatedBy once the role model lands.

	var input UpdateArticleInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	utils.NormalizePtrDTO(&input)
	if err := middlewares.ValidateStruct(&input); err != nil {
		return err
	}

	errs, err := checkReferences(db, input.CategoryID, input.FournisseurID, input.EmplacementID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating article",
			"error":   err.Error(),
		})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) > 0 {
		if err := db.Model(&article).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating article: "+err.Error())
		}
		// Reload so the response reflects exactly what was persisted.
		if err := db.First(&article, "id = ?", article.Id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error updating article: "+err.Error())
		}
	}

	return c.JSON(article)
}

func DeleteArticle(c *fiber.Ctx) error {
	db := database.FromCtx(c)

	var article models.Article
	if err := db.First(&article, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Article not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting article",
			"error":   err.Error(),
		})
	}

	// TODO: restrict deletes to article.CreatedBy once the role model lands.

	if err := db.Delete(&article).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error deleting article: "+err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// checkReferences verifies that supplied foreign keys point at existing rows.
// Missing rows land in the errors map under the payload field name; a store
// failure during a lookup is returned as an error, not reported as invalid.
func checkReferences(db *gorm.DB, categoryID, fournisseurID, emplacementID *uint) (map[string][]string, error) {
	errs := make(map[string][]string)

	exists := func(model any, id uint) (bool, error) {
		var n int64
		if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
			return false, err
		}
		return n > 0, nil
	}

	for _, ref := range []struct {
		id    *uint
		model any
		field string
	}{
		{categoryID, &models.Categorie{}, "category_id"},
		{fournisseurID, &models.Fournisseur{}, "fournisseur_id"},
		{emplacementID, &models.Emplacement{}, "emplacement_id"},
	} {
		if ref.id == nil {
			continue
		}
		ok, err := exists(ref.model, *ref.id)
		if err != nil {
			return nil, err
		}
		if !ok {
			errs[ref.field] = append(errs[ref.field], "The selected "+ref.field+" is invalid.")
		}
	}

	return errs, nil
}
