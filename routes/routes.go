package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/New7ech/API/controllers"
	"github.com/New7ech/API/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to the request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction (commits/rolls back around the handler)
	protected.Use(middlewares.Tx())

	protected.Get("/user", controllers.GetCurrentUser)

	// Articles
	protected.Get("/articles", controllers.GetArticles)
	protected.Post("/articles", controllers.CreateArticle)
	protected.Get("/articles/:id", controllers.GetArticle)
	protected.Put("/articles/:id", controllers.UpdateArticle)
	protected.Patch("/articles/:id", controllers.UpdateArticle)
	protected.Delete("/articles/:id", controllers.DeleteArticle)

	// Categories
	protected.Post("/categories", controllers.CreateCategorie)
	protected.Get("/categories", controllers.GetCategories)
	protected.Get("/categories/:id", controllers.GetCategorie)
	protected.Delete("/categories/:id", controllers.DeleteCategorie)

	// Suppliers
	protected.Post("/fournisseurs", controllers.CreateFournisseur)
	protected.Get("/fournisseurs", controllers.GetFournisseurs)
	protected.Get("/fournisseurs/:id", controllers.GetFournisseur)
	protected.Delete("/fournisseurs/:id", controllers.DeleteFournisseur)

	// Storage locations
	protected.Post("/emplacements", controllers.CreateEmplacement)
	protected.Get("/emplacements", controllers.GetEmplacements)
	protected.Get("/emplacements/:id", controllers.GetEmplacement)
	protected.Delete("/emplacements/:id", controllers.DeleteEmplacement)
}
