package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"adminapi/internal/model"
	"adminapi/internal/service"
)

// MapHistory returns the static financial-centre markers.
func MapHistory(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		markers, err := svc.History(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(markers)
	}
}

// MapGeoJSON returns the world-region FeatureCollection.
func MapGeoJSON(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		regions, err := svc.Regions(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(regions)
	}
}

// ListPresets returns all preset locations.
func ListPresets(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presets, err := svc.ListPresets(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(presets)
	}
}

// CreatePreset adds a preset location; the id is server-assigned.
func CreatePreset(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.PresetLocation
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.ID = 0

		preset, err := svc.CreatePreset(c.UserContext(), req)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(preset)
	}
}

// UpdatePreset merges the submitted fields into the preset with the given id.
func UpdatePreset(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var upd model.PresetUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		preset, err := svc.UpdatePreset(c.UserContext(), id, upd)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "preset not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(preset)
	}
}

// DeletePreset removes a preset by id and returns a confirmation.
func DeletePreset(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.DeletePreset(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "preset not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}

// ListShapes returns all saved drawn shapes.
func ListShapes(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		shapes, err := svc.ListShapes(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(shapes)
	}
}

// SaveShapes appends the submitted drawn shapes to the saved collection and
// returns the full collection. Saving accumulates; it never replaces.
func SaveShapes(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var drafts []model.Shape
		if err := c.BodyParser(&drafts); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid shape payload")
		}
		for i := range drafts {
			drafts[i].ID = 0
		}

		shapes, err := svc.SaveShapes(c.UserContext(), drafts)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(shapes)
	}
}

// UpdateShape replaces the geometry of the shape with the given id.
func UpdateShape(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req model.Shape
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid shape payload")
		}

		shape, err := svc.UpdateShape(c.UserContext(), id, req.Geometry)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "shape not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(shape)
	}
}

// DeleteShape removes a saved shape by id and returns a confirmation.
func DeleteShape(svc service.MapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.DeleteShape(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "shape not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
