package projects

import (
	"errors"
	"fmt"

	"github.com/gitfleet/gitfleet/internal/fleet"
	"github.com/gitfleet/gitfleet/internal/git"
	"github.com/gitfleet/gitfleet/internal/projects"
	"github.com/gitfleet/gitfleet/internal/server/handlers/reports"
	"github.com/go-core-fx/fiberfx/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type Handler struct {
	fleetSvc *fleet.Service

	logger *zap.Logger
}

func NewHandler(fleetSvc *fleet.Service, logger *zap.Logger) handler.Handler {
	return &Handler{
		fleetSvc: fleetSvc,

		logger: logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/projects")

	r.Use(h.errorsHandler)
	r.Get("/", h.list)
	r.Post("/refresh", h.refresh)
	r.Get("/:name", h.get)
	r.Get("/:name/files/*", h.file)
}

//	@Summary		List projects
//	@Description	Retrieve every managed project with the branches and tags all of them share
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	ListResponse
//	@Router			/projects [get]
//
// List projects.
func (h *Handler) list(c *fiber.Ctx) error {
	list := h.fleetSvc.Projects()

	return c.JSON(ListResponse{
		Projects: lo.Map(list, func(p projects.Project, _ int) ProjectResponse { return newProjectResponse(p) }),
		Branches: nonNil(h.fleetSvc.BranchIntersection()),
		Tags:     nonNil(h.fleetSvc.TagIntersection()),
	})
}

//	@Summary		Get a project
//	@Description	Retrieve the last captured state of a project
//	@Tags			projects
//	@Produce		json
//	@Param			name	path		string	true	"Project name"
//	@Success		200		{object}	ProjectResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/projects/{name} [get]
//
// Get a project.
func (h *Handler) get(c *fiber.Ctx) error {
	project, err := h.fleetSvc.Project(c.Params("name"))
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	return c.JSON(newProjectResponse(project))
}

//	@Summary		Refresh projects
//	@Description	Capture the state of every working copy again
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	reports.Response
//	@Router			/projects/refresh [post]
//
// Refresh projects.
func (h *Handler) refresh(c *fiber.Ctx) error {
	report, err := h.fleetSvc.Refresh(c.Context())
	if err != nil {
		return fmt.Errorf("failed to refresh projects: %w", err)
	}

	return c.JSON(reports.New(report))
}

//	@Summary		Read a file
//	@Description	Return the content of a file in the working copy of a project
//	@Tags			projects
//	@Produce		octet-stream
//	@Param			name	path		string	true	"Project name"
//	@Param			path	path		string	true	"File path relative to the working copy root"
//	@Success		200		{file}		file
//	@Failure		400		{object}	fiberfx.ErrorResponse
//	@Failure		404		{object}	fiberfx.ErrorResponse
//	@Router			/projects/{name}/files/{path} [get]
//
// Read a file.
func (h *Handler) file(c *fiber.Ctx) error {
	data, err := h.fleetSvc.ReadFile(c.Params("name"), c.Params("*"))
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, projects.ErrNotFound), errors.Is(err, git.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, fleet.ErrInvalidArgument):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
