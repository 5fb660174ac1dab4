package frankfurter

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-exchange/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestService_Latest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/latest", req.URL.Path)
		assert.Equal(t, "MYR", req.URL.Query().Get("base"))
		response := `{
			"amount": 1.0,
			"base": "MYR",
			"date": "2025-06-13",
			"rates": {
				"USD": 0.2356,
				"GBP": 0.1738,
				"BAD": "x"
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	s := NewService(server.URL+"/", time.Second)

	r, err := s.Latest(context.Background(), "MYR")

	require.NoError(t, err)
	assert.Equal(t, "2025-06-13", r.Date)
	assert.Equal(t, domain.Currency("MYR"), r.Base)
	assert.Equal(t, domain.Rates{"USD": 0.2356, "GBP": 0.1738, "MYR": 1.0}, r.Rates)
}

func TestService_LatestMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no base", `{"date":"2025-06-13","rates":{}}`, "missing 'base' field"},
		{"no date", `{"base":"MYR","rates":{}}`, "missing 'date' field"},
		{"no rates", `{"base":"MYR","date":"2025-06-13"}`, "missing 'rates' object"},
		{"not json", `<html>`, "decoding json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewService(server.URL, time.Second).Latest(context.Background(), "MYR")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestService_LatestBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
		_, _ = rw.Write([]byte(`{"message":"not found"}`))
	}))
	defer server.Close()

	_, err := NewService(server.URL, time.Second).Latest(context.Background(), "FOO")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestService_LatestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	s := &service{url: server.URL}
	s.client.Timeout = 1 * time.Millisecond

	_, err := s.Latest(context.Background(), "MYR")

	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "Client.Timeout")) // fragile :-(
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService("", 0).(*service)
	assert.Equal(t, ApiUrlBase, s.url)
	assert.Equal(t, DefaultTimeout, s.client.Timeout)
}
