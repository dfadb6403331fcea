package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var ErrRateUnavailable = errors.New("exchange rate unavailable")

// RateClient looks up the exchange rate between two currency codes.
type RateClient interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

type HttpRateClient struct {
	baseUrl    string
	httpClient *http.Client
}

func NewHttpRateClient(baseUrl string) *HttpRateClient {
	return &HttpRateClient{
		baseUrl:    baseUrl,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type rateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// Rate fetches the rate from the configured API, retrying transient
// failures with exponential backoff. Failures surface as errors; callers
// decide what to show and keep prior data on screen.
func (c *HttpRateClient) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	requestUrl := fmt.Sprintf("%s/rate?from=%s&to=%s", c.baseUrl, url.QueryEscape(from), url.QueryEscape(to))

	var rate decimal.Decimal
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Warnf("exchange rate request failed, will retry: %v", err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			log.Warnf("exchange rate API returned %d, will retry", resp.StatusCode)
			return fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("exchange rate API returned status %d", resp.StatusCode))
		}

		var body rateResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return backoff.Permanent(fmt.Errorf("could not decode rate response: %w", err))
		}
		rate = body.Rate
		return nil
	}

	retryBackoff := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, retryBackoff); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	return rate, nil
}
