package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"go-currency-exchange/domain"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	ApiUrlBase     = "https://api.frankfurter.app"
	DefaultTimeout = 5 * time.Second
)

// Service wraps the Frankfurter exchange rate REST API
type Service interface {
	Latest(ctx context.Context, base domain.Currency) (domain.RatesResponse, error)
}

// service Frankfurter API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid Frankfurter Service. An empty url means ApiUrlBase.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		url: strings.TrimSuffix(url, "/"),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// Latest loads the latest rates quoted against base.
// The base itself is always present in the result with a rate of 1.
func (s *service) Latest(ctx context.Context, base domain.Currency) (domain.RatesResponse, error) {
	type response struct {
		Base  *string                `json:"base"`
		Date  *string                `json:"date"`
		Rates map[string]interface{} `json:"rates"` // maps currency codes to rates
	}

	url := fmt.Sprintf("%v/latest?base=%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return domain.RatesResponse{}, fmt.Errorf("http get: unexpected status %v", httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("reading json: %w", err)
	}

	var r response
	err = json.Unmarshal(bytes, &r)
	if err != nil {
		return domain.RatesResponse{}, fmt.Errorf("decoding json: %w", err)
	}

	switch {
	case r.Base == nil:
		return domain.RatesResponse{}, errors.New("missing 'base' field")
	case r.Date == nil:
		return domain.RatesResponse{}, errors.New("missing 'date' field")
	case r.Rates == nil:
		return domain.RatesResponse{}, errors.New("missing 'rates' object")
	}

	rates := domain.Rates{}
	for k, v := range r.Rates {
		// non-numeric rates are skipped
		if f, ok := v.(float64); ok {
			rates[domain.Currency(k)] = domain.Rate(f)
		}
	}
	rates[domain.Currency(*r.Base)] = 1.0

	return domain.RatesResponse{
		Date:  *r.Date,
		Base:  domain.Currency(*r.Base),
		Rates: rates,
	}, nil
}
