package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/api/metrics"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// AssignationHandler handles HTTP requests for assignation operations.
type AssignationHandler struct {
	service ports.AssignationService
}

func NewAssignationHandler(service ports.AssignationService) *AssignationHandler {
	return &AssignationHandler{service: service}
}

// Register handles POST /api/assignations.
//
// @Summary      Assign a user to an account
// @Tags         assignations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerAssignationRequest  true  "Assignation details"
// @Success      201   {object}  domain.Assignation
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/assignations [post]
func (h *AssignationHandler) Register(c echo.Context) error {
	var req registerAssignationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignation, err := h.service.RegisterAssignation(c.Request().Context(), req.UserID, req.AccountID)
	if err != nil {
		return err
	}

	metrics.AssignationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, assignation)
}

// List handles GET /api/assignations.
//
// @Summary      List assignations
// @Tags         assignations
// @Produce      json
// @Security     BearerAuth
// @Param        userName      query     string  false  "Case-insensitive substring over first/last name"
// @Param        accountName   query     string  false  "Substring over account name"
// @Param        minStartDate  query     string  false  "Inclusive lower bound (RFC 3339 or YYYY-MM-DD)"
// @Param        maxStartDate  query     string  false  "Inclusive upper bound"
// @Param        minEndDate    query     string  false  "Inclusive lower bound"
// @Param        maxEndDate    query     string  false  "Inclusive upper bound"
// @Param        sortBy        query     string  false  "userName | accountName | startDate | endDate"
// @Param        sortOrder     query     string  false  "asc | desc"
// @Param        populateInfo  query     bool    false  "Inline the related user and account"
// @Param        skip          query     int     false  "Rows to skip"
// @Param        take          query     int     true   "Page size (1-100)"
// @Success      200   {array}   domain.Assignation
// @Failure      400   {object}  errorResponse
// @Router       /api/assignations [get]
func (h *AssignationHandler) List(c echo.Context) error {
	filter, err := bindAssignationsFilter(c)
	if err != nil {
		return err
	}

	assignations, err := h.service.Assignations(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignations)
}

// Terminate handles PATCH /api/assignations/:id.
//
// @Summary      Terminate an assignation
// @Tags         assignations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Assignation id"
// @Success      200  {object}  domain.Assignation
// @Failure      404  {object}  errorResponse
// @Router       /api/assignations/{id} [patch]
func (h *AssignationHandler) Terminate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	assignation, err := h.service.TerminateAssignation(c.Request().Context(), id)
	if err != nil {
		return err
	}

	metrics.AssignationsTerminatedTotal.Inc()
	return c.JSON(http.StatusOK, assignation)
}

func bindAssignationsFilter(c echo.Context) (ports.ListAssignationsFilter, error) {
	page, err := bindPage(c)
	if err != nil {
		return ports.ListAssignationsFilter{}, err
	}

	filter := ports.ListAssignationsFilter{
		UserName:    c.QueryParam("userName"),
		AccountName: c.QueryParam("accountName"),
		SortBy:      c.QueryParam("sortBy"),
		SortOrder:   c.QueryParam("sortOrder"),
		Page:        page,
	}

	if raw := c.QueryParam("populateInfo"); raw != "" {
		populate, err := strconv.ParseBool(raw)
		if err != nil {
			return ports.ListAssignationsFilter{}, echo.NewHTTPError(http.StatusBadRequest, "populateInfo must be a boolean")
		}
		filter.PopulateInfo = populate
	}

	dates := []struct {
		param string
		dest  **time.Time
	}{
		{"minStartDate", &filter.MinStartDate},
		{"maxStartDate", &filter.MaxStartDate},
		{"minEndDate", &filter.MinEndDate},
		{"maxEndDate", &filter.MaxEndDate},
	}
	for _, d := range dates {
		raw := c.QueryParam(d.param)
		if raw == "" {
			continue
		}
		parsed, err := parseDate(raw)
		if err != nil {
			return ports.ListAssignationsFilter{}, echo.NewHTTPError(http.StatusBadRequest,
				d.param+" must be RFC 3339 or YYYY-MM-DD")
		}
		*d.dest = &parsed
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
