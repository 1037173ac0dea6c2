// Package riskfree provides the annual risk-free rate used when
// computing Sharpe ratios. Rates come from the public US treasury
// yield curve snapshot API.
package riskfree

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Client interface {
	// AnnualRate returns the treasury yield, as a decimal fraction,
	// for the tenor closest to monthsOut on the given date.
	AnnualRate(ctx context.Context, date time.Time, monthsOut int) (float64, error)
}

func NewClient() Client {
	return clientHandler{
		HttpClient: http.DefaultClient,
	}
}

type clientHandler struct {
	HttpClient *http.Client
}

func (c clientHandler) AnnualRate(ctx context.Context, date time.Time, monthsOut int) (float64, error) {
	curve, err := c.getYieldCurve(ctx, date)
	if err != nil {
		return 0, err
	}

	return curve.Rate(monthsOut)
}

// YieldCurve maps tenor in months to annual yield as a decimal
// fraction.
type YieldCurve struct {
	Rates map[int]float64
}

// Rate returns the yield for the given tenor. Tenors the API did not
// report are interpolated from the neighboring points; tenors outside
// the curve clamp to the nearest endpoint.
func (yc YieldCurve) Rate(monthsOut int) (float64, error) {
	if len(yc.Rates) == 0 {
		return 0, fmt.Errorf("yield curve has no rates")
	}
	if v, ok := yc.Rates[monthsOut]; ok {
		return v, nil
	}

	tenors := []int{}
	for t := range yc.Rates {
		tenors = append(tenors, t)
	}
	sort.Ints(tenors)

	if monthsOut < tenors[0] {
		return yc.Rates[tenors[0]], nil
	}
	if monthsOut > tenors[len(tenors)-1] {
		return yc.Rates[tenors[len(tenors)-1]], nil
	}

	for i := 0; i < len(tenors)-1; i++ {
		if monthsOut > tenors[i] && monthsOut < tenors[i+1] {
			return (yc.Rates[tenors[i]] + yc.Rates[tenors[i+1]]) / 2, nil
		}
	}

	return 0, fmt.Errorf("unable to interpolate rate for %d months", monthsOut)
}

var curveFields = []string{
	"yield_1m",
	"yield_2m",
	"yield_3m",
	"yield_4m",
	"yield_6m",
	"yield_1y",
	"yield_2y",
	"yield_3y",
	"yield_5y",
	"yield_7y",
	"yield_10y",
	"yield_20y",
	"yield_30y",
}

func tenorMonths(field string) (int, error) {
	s := strings.TrimPrefix(field, "yield_")
	unit := s[len(s)-1:]
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("unparseable tenor %q: %w", field, err)
	}
	if unit == "y" {
		n *= 12
	}

	return n, nil
}

func (c clientHandler) getYieldCurve(ctx context.Context, date time.Time) (*YieldCurve, error) {
	url := fmt.Sprintf(
		"https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0",
		date.Format(time.DateOnly),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := []map[string]interface{}{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, err
	}

	rates := map[int]float64{}
	for _, snapshot := range responseBody {
		for _, field := range curveFields {
			v, ok := snapshot[field]
			if !ok || v == nil {
				continue
			}
			pct, ok := v.(float64)
			if !ok {
				continue
			}
			months, err := tenorMonths(field)
			if err != nil {
				return nil, err
			}
			rates[months] = pct / 100
		}
	}

	return &YieldCurve{
		Rates: rates,
	}, nil
}
