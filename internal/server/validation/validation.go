package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validatable is implemented by requests with rules beyond struct tags.
type Validatable interface {
	Validate() error
}

// DecorateWithBodyEx parses the JSON body into T, validates it and passes it
// to next.
func DecorateWithBodyEx[T any](v *validator.Validate, next func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate(v, req); err != nil {
			return err
		}

		return next(c, req)
	}
}

// DecorateWithQueryEx parses the query string into T, validates it and
// passes it to next.
func DecorateWithQueryEx[T any](v *validator.Validate, next func(*fiber.Ctx, *T) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate(v, req); err != nil {
			return err
		}

		return next(c, req)
	}
}

func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if validatable, ok := req.(Validatable); ok {
		if err := validatable.Validate(); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	return nil
}
