package handler

import (
	"github.com/gofiber/fiber/v2"

	"adminapi/internal/http/middleware"
	"adminapi/internal/service"
)

// Services bundles the injected service layer for route registration.
type Services struct {
	Auth  service.AuthService
	Users service.UserService
	Files service.FileService
	Maps  service.MapService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app. Every
// route except the root banner, health probes and login sits behind bearer
// authentication.
func RegisterRoutes(app *fiber.App, svcs Services, verifier middleware.TokenVerifier) {
	app.Get("/", Root())
	app.Get("/health", HealthCheck())
	app.Get("/healthz", LivenessProbe())
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", Docs())

	app.Post("/auth/login", Login(svcs.Auth))

	requireAuth := middleware.BearerAuth(verifier)

	users := app.Group("/users", requireAuth)
	// /me must be registered before /:id so it is not captured as an id
	users.Get("/me", GetSelf(svcs.Auth))
	users.Put("/me", UpdateSelf(svcs.Auth))
	users.Get("/", ListUsers(svcs.Users))
	users.Post("/", CreateUser(svcs.Users))
	users.Put("/:id", UpdateUser(svcs.Users))
	users.Delete("/:id", DeleteUser(svcs.Users))

	files := app.Group("/files", requireAuth)
	files.Get("/", ListFiles(svcs.Files))
	files.Get("/:id", GetFile(svcs.Files))
	files.Post("/", UploadFile(svcs.Files))
	files.Put("/:id", UpdateFile(svcs.Files))
	files.Delete("/:id", DeleteFile(svcs.Files))

	maps := app.Group("/maps", requireAuth)
	maps.Get("/history", MapHistory(svcs.Maps))
	maps.Get("/geojson", MapGeoJSON(svcs.Maps))
	maps.Get("/custom", ListPresets(svcs.Maps))
	maps.Post("/custom", CreatePreset(svcs.Maps))
	maps.Put("/custom/:id", UpdatePreset(svcs.Maps))
	maps.Delete("/custom/:id", DeletePreset(svcs.Maps))
	maps.Get("/shapes", ListShapes(svcs.Maps))
	maps.Post("/shapes", SaveShapes(svcs.Maps))
	maps.Put("/shapes/:id", UpdateShape(svcs.Maps))
	maps.Delete("/shapes/:id", DeleteShape(svcs.Maps))
}

// Root returns the API banner.
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Admin Dashboard API is running"})
	}
}

// HealthCheck reports readiness. The store is process memory, so there is no
// dependency to probe beyond the process itself.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a bare liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
