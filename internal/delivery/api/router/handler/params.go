package handler

import (
	"strconv"

	domainerrors "pos/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// tableNumberParam reads the :number path parameter.
func tableNumberParam(c echo.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		return 0, domainerrors.NewValidationError("number", "table number must be a positive integer")
	}

	return number, nil
}
