package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Register handles POST /api/clients.
//
// @Summary      Register a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      registerClientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Register(c echo.Context) error {
	var req registerClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.RegisterClient(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  errorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	client, err := h.service.Client(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        skip  query     int  false  "Rows to skip"
// @Param        take  query     int  true   "Page size (1-100)"
// @Success      200   {array}   domain.Client
// @Failure      400   {object}  errorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}
	clients, err := h.service.Clients(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Update handles PATCH /api/clients/:id.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Client id"
// @Param        body  body      updateClientRequest  true  "Fields to update"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clients/{id} [patch]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.EditClient(c.Request().Context(), id, ports.ClientPatch{Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// UpdateArchived handles PATCH /api/clients/:id/archived.
//
// @Summary      Archive or restore a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Client id"
// @Param        body  body      updateArchivedRequest  true  "Archived flag"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/clients/{id}/archived [patch]
func (h *ClientHandler) UpdateArchived(c echo.Context) error {
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

	client, err := h.service.EditClientArchived(c.Request().Context(), id, *req.Archived)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}
