package credentials

import (
	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/server/validation"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PUTRequest represents the request payload for replacing git credentials.
type PUTRequest struct {
	Username string `json:"username" validate:"max=255"`
	Password string `json:"password" validate:"max=1024"`
}

type Handler struct {
	fleetSvc *fleet.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(fleetSvc *fleet.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		fleetSvc: fleetSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r.Put("/credentials", validation.DecorateWithBodyEx(h.validator, h.put))
}

//	@Summary		Replace credentials
//	@Description	Replace the username and password used by subsequent network operations
//	@Tags			credentials
//	@Accept			json
//	@Param			request	body	PUTRequest	true	"Credentials"
//	@Success		204
//	@Failure		400	{object}	fiberfx.ErrorResponse
//	@Router			/credentials [put]
//
// Replace credentials.
func (h *Handler) put(c *fiber.Ctx, req *PUTRequest) error {
	h.fleetSvc.SetCredentials(req.Username, req.Password)

	return c.SendStatus(fiber.StatusNoContent)
}
