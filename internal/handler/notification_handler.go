package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lonelywalls-events/internal/domain"
	"lonelywalls-events/internal/middleware"
	"lonelywalls-events/internal/service/notifier"
)

type NotificationHandler struct {
	notifier notifier.Service
}

func NewNotificationHandler(notifierSvc notifier.Service) *NotificationHandler {
	return &NotificationHandler{notifier: notifierSvc}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return middleware.BadRequest("Invalid pagination parameters")
	}
	unseenOnly := c.Query("unseen_only") == "true"

	result, err := h.notifier.List(c.Context(), userID, unseenOnly, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *NotificationHandler) UnseenCount(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	count, err := h.notifier.CountUnseen(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkSeen(c *fiber.Ctx) error {
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifier.MarkSeen(c.Context(), notifID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *NotificationHandler) MarkAllSeen(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.BadRequest("Invalid user ID")
	}

	if err := h.notifier.MarkAllSeen(c.Context(), userID); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
