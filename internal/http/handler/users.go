package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"adminapi/internal/http/middleware"
	"adminapi/internal/model"
	"adminapi/internal/service"
)

// idParam parses the :id route parameter.
func idParam(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("id"))
}

// GetSelf returns the authenticated user's profile.
func GetSelf(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Self(c.UserContext(), middleware.AuthUserID(c))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return fiber.ErrUnauthorized
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(user)
	}
}

// UpdateSelf applies a partial profile update for the authenticated user.
func UpdateSelf(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upd model.ProfileUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.UpdateSelf(c.UserContext(), middleware.AuthUserID(c), upd)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return fiber.ErrUnauthorized
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(user)
	}
}

// ListUsers returns the user directory.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(users)
	}
}

// createUserRequest is a User plus the optional password the admin form may
// submit. The mock backend has no account provisioning, so the password is
// accepted and discarded.
type createUserRequest struct {
	model.User
	Password string `json:"password,omitempty"`
}

// CreateUser adds a user to the directory; the id is server-assigned.
func CreateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		req.User.ID = 0

		user, err := svc.Create(c.UserContext(), req.User)
		if err != nil {
			if errors.Is(err, service.ErrEmailRequired) {
				return writeError(c, fiber.StatusBadRequest, "EMAIL_REQUIRED", "email is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// UpdateUser merges the submitted fields into the user with the given id.
func UpdateUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var upd model.UserUpdate
		if err := c.BodyParser(&upd); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.Update(c.UserContext(), id, upd)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(user)
	}
}

// DeleteUser removes a user by id and returns a confirmation.
func DeleteUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{"ok": true})
	}
}
