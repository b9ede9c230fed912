package controller

import (
	"synapsex-be/internal/dto"
	"synapsex-be/internal/pkg/apperror"
	"synapsex-be/internal/pkg/serverutils"
	"synapsex-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IStoryController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Details(ctx *fiber.Ctx) error
}

type storyController struct {
	storyService service.IStoryService
}

func NewStoryController(storyService service.IStoryService) IStoryController {
	return &storyController{
		storyService: storyService,
	}
}

func (c *storyController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/social/stories")
	// The feed is public; everything else needs a caller identity.
	h.Get("", c.List)
	h.Use(auth)
	h.Post("", c.Create)
	h.Post(":id/view", c.View)
	h.Post(":id/reply", c.Reply)
	h.Get(":id/details", c.Details)
	h.Delete(":id", c.Delete)
}

func (c *storyController) Create(ctx *fiber.Ctx) error {
	userId := callerId(ctx)

	var req dto.CreateStoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.storyService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(res))
}

func (c *storyController) List(ctx *fiber.Ctx) error {
	res, err := c.storyService.ListActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *storyController) View(ctx *fiber.Ctx) error {
	userId := callerId(ctx)
	storyId, err := storyIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.storyService.View(ctx.Context(), userId, storyId)
	if err != nil {
		return err
	}

	if res.Ignored {
		return ctx.JSON(fiber.Map{"success": true, "ignored": true})
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *storyController) Reply(ctx *fiber.Ctx) error {
	userId := callerId(ctx)
	storyId, err := storyIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ReplyStoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("Malformed request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.storyService.Reply(ctx.Context(), userId, storyId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse(res))
}

func (c *storyController) Delete(ctx *fiber.Ctx) error {
	userId := callerId(ctx)
	storyId, err := storyIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.storyService.Delete(ctx.Context(), userId, storyId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("Story terminated"))
}

func (c *storyController) Details(ctx *fiber.Ctx) error {
	userId := callerId(ctx)
	storyId, err := storyIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.storyService.Details(ctx.Context(), userId, storyId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res))
}

func callerId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// storyIdParam parses the :id segment. A malformed id can never name a
// story, so it reads as not found rather than a validation failure.
func storyIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewNotFound("Story not found")
	}
	return id, nil
}
