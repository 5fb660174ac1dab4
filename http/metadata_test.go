package http

import (
	"encoding/json"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func newMetadataServer(t *testing.T) *Server {
	return NewServer(&mock{t: t}, geoMock{}, &historyMock{}, log.NewNopLogger())
}

func TestServer_ListCurrencies(t *testing.T) {
	w := serve(newMetadataServer(t), "GET", "/api/currencies")
	require.Equal(t, 200, w.Code)

	var got []currencyInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 28)
	assert.Equal(t, currencyInfo{
		Code:    "USD",
		Name:    "US Dollar",
		Symbol:  "$",
		Country: "US",
		Flag:    "https://flagsapi.com/US/flat/64.png",
		Badge:   "US",
		Valid:   true,
	}, got[0])
}

func TestServer_Currency(t *testing.T) {
	w := serve(newMetadataServer(t), "GET", "/api/currencies/gbp?amount=1234.5&style=shiny&size=32")
	require.Equal(t, 200, w.Code)

	assert.JSONEq(t, `{
		"code": "GBP",
		"name": "British Pound",
		"symbol": "£",
		"country": "GB",
		"flag": "https://flagsapi.com/GB/shiny/32.png",
		"badge": "GB",
		"valid": true,
		"formatted": "£1,234.50"
	}`, w.Body.String())
}

func TestServer_CurrencyUnknown(t *testing.T) {
	w := serve(newMetadataServer(t), "GET", "/api/currencies/XYZ")
	require.Equal(t, 200, w.Code)

	assert.JSONEq(t, `{
		"code": "XYZ",
		"name": "XYZ",
		"symbol": "XYZ",
		"country": "EU",
		"flag": "https://flagsapi.com/EU/flat/64.png",
		"badge": "XY",
		"valid": false
	}`, w.Body.String())
}

func TestServer_CurrencyBadSize(t *testing.T) {
	w := serve(newMetadataServer(t), "GET", "/api/currencies/USD?size=big")
	assert.Equal(t, 400, w.Code)
}

func TestServer_Languages(t *testing.T) {
	w := serve(newMetadataServer(t), "GET", "/api/languages")
	require.Equal(t, 200, w.Code)

	assert.JSONEq(t, `{
		"default": "en",
		"locales": ["en", "ms", "zh"],
		"names": {"en": "English", "ms": "Bahasa Melayu", "zh": "中文"}
	}`, w.Body.String())
}

func TestServer_Language(t *testing.T) {
	tests := []struct {
		locale string
		want   string
		name   string
	}{
		{"ms", "ms", "Bahasa Melayu"},
		{"zh-CN", "zh", "中文"},
		{"fr", "en", "English"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			w := serve(newMetadataServer(t), "GET", "/api/languages/"+tt.locale)
			require.Equal(t, 200, w.Code)

			var got struct {
				Requested string            `json:"requested"`
				Locale    string            `json:"locale"`
				Labels    map[string]string `json:"labels"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.locale, got.Requested)
			assert.Equal(t, tt.want, got.Locale)
			assert.Equal(t, tt.name, got.Labels["name"])
			assert.Len(t, got.Labels, 16)
		})
	}
}
