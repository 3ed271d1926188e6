package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/ports"
)

// AccountHandler handles HTTP requests for account operations.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Register handles POST /api/accounts.
//
// @Summary      Register a new account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerAccountRequest  true  "Account details"
// @Success      201   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.RegisterAccount(c.Request().Context(), ports.RegisterAccountInput{
		Name:          req.Name,
		ClientID:      req.ClientID,
		ResponsibleID: req.ResponsibleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, account)
}

// Get handles GET /api/accounts/:id.
//
// @Summary      Get an account by id
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  domain.Account
// @Failure      404  {object}  errorResponse
// @Router       /api/accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	account, err := h.service.Account(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// List handles GET /api/accounts.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Param        skip  query     int  false  "Rows to skip"
// @Param        take  query     int  true   "Page size (1-100)"
// @Success      200   {array}   domain.Account
// @Failure      400   {object}  errorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	accounts, err := h.service.Accounts(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Update handles PATCH /api/accounts/:id. Reference checks run only for
// the fields present in the patch.
//
// @Summary      Update an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Account id"
// @Param        body  body      updateAccountRequest  true  "Fields to update"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/accounts/{id} [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.EditAccount(c.Request().Context(), id, ports.AccountPatch{
		Name:          req.Name,
		ClientID:      req.ClientID,
		ResponsibleID: req.ResponsibleID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// UpdateArchived handles PATCH /api/accounts/:id/archived.
//
// @Summary      Archive or restore an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Account id"
// @Param        body  body      updateArchivedRequest  true  "Archived flag"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/accounts/{id}/archived [patch]
func (h *AccountHandler) UpdateArchived(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateArchivedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.EditAccountArchived(c.Request().Context(), id, *req.Archived)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}
