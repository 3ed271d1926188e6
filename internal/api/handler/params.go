package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/admin-api/internal/core/ports"
)

const maxTake = 100

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

// bindPage parses skip/take pagination query params. take is required
// and capped at maxTake; skip defaults to 0.
func bindPage(c echo.Context) (ports.Page, error) {
	rawTake := c.QueryParam("take")
	if rawTake == "" {
		return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "take is required")
	}
	take, err := strconv.Atoi(rawTake)
	if err != nil || take < 1 || take > maxTake {
		return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "take must be between 1 and 100")
	}

	skip := 0
	if rawSkip := c.QueryParam("skip"); rawSkip != "" {
		skip, err = strconv.Atoi(rawSkip)
		if err != nil || skip < 0 {
			return ports.Page{}, echo.NewHTTPError(http.StatusBadRequest, "skip must be a non-negative integer")
		}
	}

	return ports.Page{Skip: skip, Take: take}, nil
}
