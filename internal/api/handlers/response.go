package handlers

import (
	"errors"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/middleware"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func respond(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.Response{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

func respondPage[T any](c *fiber.Ctx, message string, page *dto.Page[T], overview interface{}) error {
	return c.Status(fiber.StatusOK).JSON(dto.Response{
		StatusCode: fiber.StatusOK,
		Success:    true,
		Message:    message,
		Data:       page.Data,
		Meta:       page.Meta,
		Overview:   overview,
	})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.Response{
		StatusCode: status,
		Success:    false,
		Message:    message,
	})
}

// handleError renders err as an error envelope. Unknown errors are logged
// and reported as 500 with fallback as the message.
func handleError(c *fiber.Ctx, logger *zap.Logger, err error, fallback string) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		resp := dto.Response{
			StatusCode: fiber.StatusBadRequest,
			Message:    "Validation failed",
		}
		for _, f := range verr.Fields {
			resp.Errors = append(resp.Errors, dto.FieldError{Field: f.Field, Message: f.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return fail(c, ferr.Code, ferr.Message)
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		return fail(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrAlreadyExists), errors.Is(err, service.ErrUserExists):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInUse), errors.Is(err, service.ErrTransactionLocked):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrInvalidAllocation):
		return fail(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRateNotFound):
		return fail(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	logger.Error(fallback, zap.String("path", c.Path()), zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, fallback)
}

// bind parses the JSON body into dst and validates it.
func bind(c *fiber.Ctx, v *validator.CustomValidator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return v.Validate(dst)
}

func identity(c *fiber.Ctx) (*middleware.Identity, error) {
	id, err := middleware.GetIdentity(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return id, nil
}

func paramID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

// queryID returns uuid.Nil when the parameter is absent.
func queryID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}

func pageRequest(c *fiber.Ctx) dto.PageRequest {
	return dto.NewPageRequest(c.QueryInt("page", dto.DefaultPage), c.QueryInt("limit", dto.DefaultLimit))
}

// queryTime accepts RFC 3339 or a plain date. A plain date used as an upper
// bound covers the whole day.
func queryTime(c *fiber.Ctx, name string, upper bool) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name+", expected YYYY-MM-DD or RFC 3339")
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
