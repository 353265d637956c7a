package metricsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"control-center-analytics/internal/analytics/core/domain"
	"control-center-analytics/internal/analytics/core/ports"
	"control-center-analytics/internal/analytics/core/window"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

// Client talks to the external metrics backend over HTTP and caches decoded
// responses by their exact request tuple, so identical filter sets issued
// from unrelated calls hit upstream once. Timeouts are whatever the injected
// http.Client enforces; this adapter adds none of its own.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *lru.Cache
	log     *logrus.Logger
}

var _ ports.MetricsReaderPort = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, cacheSize int, log *logrus.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{baseURL: baseURL, http: httpClient, cache: cache, log: log}, nil
}

// request is the filter body the backend recognizes.
type request struct {
	DateFrom           string   `json:"dateFrom"`
	DateTo             string   `json:"dateTo"`
	City               []string `json:"city,omitempty"`
	State              []string `json:"state,omitempty"`
	BapMerchantID      []string `json:"bapMerchantId,omitempty"`
	BppMerchantID      []string `json:"bppMerchantId,omitempty"`
	FlowType           []string `json:"flowType,omitempty"`
	TripTag            []string `json:"tripTag,omitempty"`
	VehicleCategory    string   `json:"vehicleCategory,omitempty"`
	VehicleSubCategory string   `json:"vehicleSubCategory,omitempty"`
	Granularity        string   `json:"granularity,omitempty"`
	Dimension          string   `json:"dimension,omitempty"`
}

func newRequest(f ports.Filter, dimension string) request {
	return request{
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
		Dimension:          dimension,
	}
}

type countersRow struct {
	Searches            float64 `json:"searches"`
	SearchForQuotes     float64 `json:"searchForQuotes"`
	QuotesAccepted      float64 `json:"quotesAccepted"`
	Bookings            float64 `json:"bookings"`
	CompletedRides      float64 `json:"completedRides"`
	CancelledRides      float64 `json:"cancelledRides"`
	UserCancellations   float64 `json:"userCancellations"`
	DriverCancellations float64 `json:"driverCancellations"`
	Earnings            float64 `json:"earnings"`
}

func (r countersRow) counters() domain.Counters {
	return domain.Counters{
		Searches:            r.Searches,
		SearchForQuotes:     r.SearchForQuotes,
		QuotesAccepted:      r.QuotesAccepted,
		Bookings:            r.Bookings,
		CompletedRides:      r.CompletedRides,
		CancelledRides:      r.CancelledRides,
		UserCancellations:   r.UserCancellations,
		DriverCancellations: r.DriverCancellations,
		Earnings:            r.Earnings,
	}
}

type timeSeriesRow struct {
	Date string `json:"date"`
	countersRow
}

type dimensionalRow struct {
	Timestamp      string `json:"timestamp"`
	DimensionValue string `json:"dimensionValue"`
	countersRow
}

// TimeSeries fetches one counter bucket per granularity step.
func (c *Client) TimeSeries(ctx context.Context, f ports.Filter) ([]domain.CounterPoint, error) {
	var rows []timeSeriesRow
	if err := c.post(ctx, "/analytics/timeseries", newRequest(f, ""), &rows); err != nil {
		return nil, err
	}

	points := make([]domain.CounterPoint, 0, len(rows))
	for _, row := range rows {
		ts, err := window.ParseTimestamp(row.Date)
		if err != nil {
			return nil, fmt.Errorf("timeseries row: %w", err)
		}
		points = append(points, domain.CounterPoint{Timestamp: ts, Counters: row.counters()})
	}
	return points, nil
}

// DimensionalSeries fetches one row per dimension value per bucket.
func (c *Client) DimensionalSeries(ctx context.Context, f ports.Filter, dimension string) ([]domain.DimensionalPoint, error) {
	var rows []dimensionalRow
	if err := c.post(ctx, "/analytics/dimensional", newRequest(f, dimension), &rows); err != nil {
		return nil, err
	}

	points := make([]domain.DimensionalPoint, 0, len(rows))
	for _, row := range rows {
		ts, err := window.ParseTimestamp(row.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("dimensional row: %w", err)
		}
		points = append(points, domain.DimensionalPoint{
			DimensionValue: row.DimensionValue,
			CounterPoint:   domain.CounterPoint{Timestamp: ts, Counters: row.counters()},
		})
	}
	return points, nil
}

// Totals fetches the summed counters for the whole window.
func (c *Client) Totals(ctx context.Context, f ports.Filter) (domain.Counters, error) {
	var row countersRow
	if err := c.post(ctx, "/analytics/totals", newRequest(f, ""), &row); err != nil {
		return domain.Counters{}, err
	}
	return row.counters(), nil
}

func (c *Client) post(ctx context.Context, path string, req request, out any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	key := path + "|" + string(body)
	if cached, ok := c.cache.Get(key); ok {
		return json.Unmarshal(cached.([]byte), out)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metrics backend %s: status %d", path, resp.StatusCode)
	}

	if c.log != nil {
		c.log.WithFields(logrus.Fields{
			"path":     path,
			"duration": time.Since(start),
			"bytes":    len(raw),
		}).Debug("metrics backend call")
	}

	c.cache.Add(key, raw)
	return json.Unmarshal(raw, out)
}
