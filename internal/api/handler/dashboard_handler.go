package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

// DashboardHandler serves the per-user carbon and energy calculation records.
// All routes are behind the auth gate; the owning user id always comes from
// the verified token, never from the request.
type DashboardHandler struct {
	calcService ports.CalculationService
}

func NewDashboardHandler(calcService ports.CalculationService) *DashboardHandler {
	return &DashboardHandler{calcService: calcService}
}

// ListCarbon returns the caller's carbon calculation history.
//
// @Summary      List carbon calculations
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   calculationResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/carbon [get]
func (h *DashboardHandler) ListCarbon(c echo.Context) error {
	return h.list(c, domain.CalcCarbon)
}

// RecordCarbon stores a carbon calculation for the caller.
//
// @Summary      Record a carbon calculation
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      recordCalculationRequest  true  "Carbon output in kg CO2"
// @Success      201   {object}  calculationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /dashboard/carbon [post]
func (h *DashboardHandler) RecordCarbon(c echo.Context) error {
	return h.record(c, domain.CalcCarbon)
}

// ListEnergy returns the caller's energy calculation history.
//
// @Summary      List energy calculations
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}   calculationResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /dashboard/energy [get]
func (h *DashboardHandler) ListEnergy(c echo.Context) error {
	return h.list(c, domain.CalcEnergy)
}

// RecordEnergy stores an energy calculation for the caller.
//
// @Summary      Record an energy calculation
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      recordCalculationRequest  true  "Energy usage in kWh"
// @Success      201   {object}  calculationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /dashboard/energy [post]
func (h *DashboardHandler) RecordEnergy(c echo.Context) error {
	return h.record(c, domain.CalcEnergy)
}

func (h *DashboardHandler) list(c echo.Context, kind domain.CalculationKind) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	calcs, err := h.calcService.History(c.Request().Context(), userID, kind)
	if err != nil {
		return err
	}

	out := make([]calculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		out = append(out, toCalculationResponse(&calc))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DashboardHandler) record(c echo.Context, kind domain.CalculationKind) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req recordCalculationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	calc, err := h.calcService.Record(c.Request().Context(), userID, kind, req.Value, req.Details)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCalculationResponse(calc))
}

func toCalculationResponse(calc *domain.Calculation) calculationResponse {
	return calculationResponse{
		ID:      calc.ID,
		Value:   calc.Value,
		Details: calc.Details,
		Date:    calc.Date,
	}
}
