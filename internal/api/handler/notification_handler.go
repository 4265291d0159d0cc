package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

type unreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type notificationListResponse struct {
	Data []*domain.Notification `json:"data"`
}

// NotificationHandler exposes the per-user notification inbox.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/notifications.
//
// @Summary      List the authenticated user's notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  notificationListResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Notification{}
	}
	return c.JSON(http.StatusOK, notificationListResponse{Data: items})
}

// UnreadCount handles GET /api/notifications/unread-count.
//
// @Summary      Count unread notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Unread: count})
}

// MarkRead handles PUT /api/notifications/:id/read.
//
// @Summary      Mark one notification as read
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	n, err := h.service.MarkRead(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// MarkAllRead handles PUT /api/notifications/read/all.
//
// @Summary      Mark every notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  "No Content"
// @Router       /api/notifications/read/all [put]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllRead(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAll handles DELETE /api/notifications.
//
// @Summary      Delete every notification
// @Tags         notifications
// @Security     BearerAuth
// @Success      204  "No Content"
// @Router       /api/notifications [delete]
func (h *NotificationHandler) DeleteAll(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAll(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
