package handlers

import (
	"errors"

	"github.com/calotrack/backend/internal/dto"
	"github.com/calotrack/backend/internal/middleware"
	"github.com/calotrack/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DailyHandler struct {
	dailyService *services.DailyLogService
}

func NewDailyHandler(dailyService *services.DailyLogService) *DailyHandler {
	return &DailyHandler{dailyService: dailyService}
}

func (h *DailyHandler) GetToday(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	log, err := h.dailyService.GetToday(userID)
	if err != nil {
		return dailyError(c, err)
	}

	return c.JSON(log)
}

func (h *DailyHandler) AddFood(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AddFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.dailyService.AddFood(userID, &req)
	if err != nil {
		return dailyError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *DailyHandler) UpdateFood(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	var req dto.UpdateFoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.dailyService.UpdateFood(userID, entryID, &req)
	if err != nil {
		return dailyError(c, err)
	}

	return c.JSON(entry)
}

func (h *DailyHandler) DeleteFood(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid entry id",
		})
	}

	if err := h.dailyService.DeleteFood(userID, entryID); err != nil {
		return dailyError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DailyHandler) AddExercise(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AddExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	entry, err := h.dailyService.AddExercise(userID, &req)
	if err != nil {
		return dailyError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *DailyHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summaries, err := h.dailyService.History(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(summaries)
}

// dailyError maps the daily-log sentinel errors to HTTP statuses. A missing
// profile is a 400 "finish onboarding" signal rather than a 404.
func dailyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrProfileRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrEntryNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidEntry):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
