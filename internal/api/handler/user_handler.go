package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pairui/mission-board/internal/core/ports"
)

type selectRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=developer designer"`
}

type updateProfileRequest struct {
	Bio       *string  `json:"bio"`
	Avatar    *string  `json:"avatar"`
	Skills    []string `json:"skills"`
	Portfolio *string  `json:"portfolio"`
}

type updateAccountRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
}

type profileResponse struct {
	Bio       string   `json:"bio,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	Skills    []string `json:"skills,omitempty"`
	Portfolio string   `json:"portfolio,omitempty"`
}

type userResponse struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email,omitempty"`
	Role      string          `json:"role"`
	Credits   int64           `json:"credits"`
	Profile   profileResponse `json:"profile"`
	CreatedAt time.Time       `json:"created_at"`
}

// UserHandler exposes account and profile endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /api/users/me.
//
// @Summary      Get the authenticated user's account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Current(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, true))
}

// Get handles GET /api/users/:id. Returns the public profile only.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	if _, err := requesterID(c); err != nil {
		return err
	}

	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, false))
}

// SelectRole handles PUT /api/users/me/role.
//
// @Summary      Select the account role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectRoleRequest  true  "Chosen role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/users/me/role [put]
func (h *UserHandler) SelectRole(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req selectRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.SelectRole(c.Request().Context(), userID, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, true))
}

// UpdateProfile handles PUT /api/users/me/profile.
//
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  userResponse
// @Router       /api/users/me/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateProfile(c.Request().Context(), userID, ports.UpdateProfileInput{
		Bio:       req.Bio,
		Avatar:    req.Avatar,
		Skills:    req.Skills,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, true))
}

// UpdateAccount handles PUT /api/users/me.
//
// @Summary      Update username or role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateAccountRequest  true  "Account fields"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users/me [put]
func (h *UserHandler) UpdateAccount(c echo.Context) error {
	userID, err := requesterID(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.service.UpdateAccount(c.Request().Context(), userID, ports.UpdateAccountInput{
		Username: req.Username,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user, true))
}
