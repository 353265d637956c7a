package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"control-center-analytics/internal/analytics/core/chart"
	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/usecase"
	"control-center-analytics/internal/analytics/core/window"

	"github.com/gofiber/fiber/v2"
)

type BuildGridUseCase interface {
	Execute(ctx context.Context, in usecase.BuildGridInput) (domain.Grid, error)
}

type GetKPIsUseCase interface {
	Execute(ctx context.Context, in usecase.GetKPIsInput) ([]domain.KPI, error)
}

type ComparePeriodsUseCase interface {
	Execute(ctx context.Context, in usecase.ComparePeriodsInput) (*usecase.ComparePeriodsOutput, error)
}

type AnalyticsHandler struct {
	grid    BuildGridUseCase
	kpis    GetKPIsUseCase
	compare ComparePeriodsUseCase
}

func NewAnalyticsHandler(grid BuildGridUseCase, kpis GetKPIsUseCase, compare ComparePeriodsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{grid: grid, kpis: kpis, compare: compare}
}

// BuildGrid godoc
// @Summary Build a segmented chart grid
// @Description Ranks segments, fans out per-cell queries and returns the assembled grid
// @Tags Charts
// @Accept json
// @Produce json
// @Param request body GridRequest true "Grid request"
// @Success 200 {object} GridResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/charts/grid [post]
func (h *AnalyticsHandler) BuildGrid(c *fiber.Ctx) error {
	var req GridRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	in := usecase.BuildGridInput{
		Filter:     toFilter(req.Filter),
		Metric:     req.Metric,
		Cumulative: req.Cumulative,
		Inner:      toSegment(req.Inner),
		Middle:     toSegment(req.Middle),
		Outer:      toSegment(req.Outer),
	}

	g, err := h.grid.Execute(c.Context(), in)
	if err != nil {
		return mapError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toGridResponse(g))
}

// GetKPIs godoc
// @Summary Headline KPIs for the live dashboard
// @Description Today's totals with change vs yesterday and vs the same day last week
// @Tags KPIs
// @Produce json
// @Param city query string false "City filter"
// @Param bap_merchant_id query string false "Merchant filter"
// @Param metrics query string false "Comma-separated metric names"
// @Success 200 {array} KPIResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/kpis [get]
func (h *AnalyticsHandler) GetKPIs(c *fiber.Ctx) error {
	var f ports.Filter
	if city := c.Query("city", ""); city != "" {
		f.City = []string{city}
	}
	if merchant := c.Query("bap_merchant_id", ""); merchant != "" {
		f.BapMerchantID = []string{merchant}
	}

	var metrics []string
	if raw := c.Query("metrics", ""); raw != "" {
		metrics = strings.Split(raw, ",")
	}

	kpis, err := h.kpis.Execute(c.Context(), usecase.GetKPIsInput{Filter: f, Metrics: metrics})
	if err != nil {
		return mapError(c, err)
	}

	out := make([]KPIResponse, 0, len(kpis))
	for _, k := range kpis {
		out = append(out, KPIResponse{
			Label:             k.Label,
			Value:             k.Value,
			ChangeVsYesterday: ChangeResponse(k.ChangeVsYesterday),
			ChangeVsLastWeek:  ChangeResponse(k.ChangeVsLastWeek),
			TrendSeries:       toSeriesResponse(k.TrendSeries),
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

// ComparePeriods godoc
// @Summary Compare a window against the equal-duration previous window
// @Tags Comparison
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Compare request"
// @Success 200 {object} CompareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /v1/compare [post]
func (h *AnalyticsHandler) ComparePeriods(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	out, err := h.compare.Execute(c.Context(), usecase.ComparePeriodsInput{
		Filter:   toFilter(req.Filter),
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
	})
	if err != nil {
		return mapError(c, err)
	}

	resp := CompareResponse{
		CurrentFrom:  out.Period.CurrentFrom,
		CurrentTo:    out.Period.CurrentTo,
		PreviousFrom: out.Period.PreviousFrom,
		PreviousTo:   out.Period.PreviousTo,
		Current:      out.Comparison.Current,
		Previous:     out.Comparison.Previous,
		Change:       map[string]ChangeResponse{},
	}
	for name, ch := range out.Comparison.Change {
		resp.Change[name] = ChangeResponse(ch)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// AxisPreview godoc
// @Summary Nice axis domain and tick labels for a data sample
// @Tags Charts
// @Accept json
// @Produce json
// @Param request body AxisRequest true "Data sample"
// @Success 200 {object} AxisResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/charts/axis [post]
func (h *AnalyticsHandler) AxisPreview(c *fiber.Ctx) error {
	var req AxisRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}

	lo, hi := chart.NiceDomain(req.Sample)
	return c.Status(http.StatusOK).JSON(AxisResponse{
		Min:        lo,
		Max:        hi,
		TickLabels: chart.TickLabels(hi),
	})
}

func toFilter(f FilterRequest) ports.Filter {
	return ports.Filter{
		DateFrom:           f.DateFrom,
		DateTo:             f.DateTo,
		City:               f.City,
		State:              f.State,
		BapMerchantID:      f.BapMerchantID,
		BppMerchantID:      f.BppMerchantID,
		FlowType:           f.FlowType,
		TripTag:            f.TripTag,
		VehicleCategory:    f.VehicleCategory,
		VehicleSubCategory: f.VehicleSubCategory,
		Granularity:        f.Granularity,
	}
}

func toSegment(s SegmentRequest) domain.SegmentSpec {
	return domain.SegmentSpec{
		Dimension:    s.Dimension,
		TopN:         s.TopN,
		CustomValues: s.CustomValues,
	}
}

func toSeriesResponse(points []domain.SeriesPoint) []SeriesPointResponse {
	out := make([]SeriesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPointResponse{
			Timestamp: p.Timestamp.Format(window.TimestampLayout),
			Value:     p.Value,
		})
	}
	return out
}

func toGridResponse(g domain.Grid) GridResponse {
	resp := GridResponse{
		Columns:   g.Columns,
		LineNames: g.LineNames,
		NoData:    g.NoData,
		Rows:      make([]GridRowResponse, 0, len(g.Rows)),
	}
	for _, row := range g.Rows {
		r := GridRowResponse{Label: row.Label, Cells: make([]GridCellResponse, 0, len(row.Cells))}
		for _, cell := range row.Cells {
			cr := GridCellResponse{
				ColumnValue: cell.ColumnValue,
				RowValue:    cell.RowValue,
			}
			if cell.Err != nil {
				cr.Error = cell.Err.Error()
			}
			for _, line := range cell.Lines {
				cr.Lines = append(cr.Lines, LineResponse{
					Name:   line.Name,
					Points: toSeriesResponse(line.Points),
				})
			}
			r.Cells = append(r.Cells, cr)
		}
		resp.Rows = append(resp.Rows, r)
	}
	return resp
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_request",
		Message: msg,
	})
}

func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownMetric),
		errors.Is(err, usecase.ErrUnknownDimension),
		errors.Is(err, usecase.ErrMissingInnerSegment),
		errors.Is(err, usecase.ErrInvalidTopN),
		errors.Is(err, window.ErrMalformedWindow):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrUpstream):
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Error:   "upstream_error",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
