package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.RegisterUser(c.Request().Context(), ports.RegisterUserInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.service.User(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        skip  query     int  false  "Rows to skip"
// @Param        take  query     int  true   "Page size (1-100)"
// @Success      200   {array}   domain.User
// @Failure      400   {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	users, err := h.service.Users(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Update handles PATCH /api/users/:id.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := ports.UserPatch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		TechSkills: req.TechSkills,
		ResumeLink: req.ResumeLink,
	}
	if req.EnglishLevel != nil {
		level := domain.EnglishLevel(*req.EnglishLevel)
		patch.EnglishLevel = &level
	}

	user, err := h.service.EditUser(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateEnabled handles PATCH /api/users/:id/enabled.
//
// @Summary      Enable or disable a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "User id"
// @Param        body  body      updateEnabledRequest  true  "Enabled flag"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/enabled [patch]
func (h *UserHandler) UpdateEnabled(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateEnabledRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.EditUserEnabled(c.Request().Context(), id, *req.Enabled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
