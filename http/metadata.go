package http

import (
	"github.com/gin-gonic/gin"
	"go-currency-exchange/currencies"
	"go-currency-exchange/languages"
	"net/http"
	"strings"
)

// currencyInfo display metadata of one currency
type currencyInfo struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Country   string `json:"country"`
	Flag      string `json:"flag"`
	Badge     string `json:"badge"`
	Valid     bool   `json:"valid"`
	Formatted string `json:"formatted,omitempty"`
}

func describe(code, style string, size int) currencyInfo {
	return currencyInfo{
		Code:    code,
		Name:    currencies.Name(code),
		Symbol:  currencies.Symbol(code),
		Country: currencies.CountryCode(code),
		Flag:    currencies.FlagURLWith(code, style, size),
		Badge:   currencies.FallbackBadge(code),
		Valid:   currencies.IsValid(code),
	}
}

// listCurrencies describes every supported currency
func (s *Server) listCurrencies(c *gin.Context) {
	codes := currencies.Codes()
	out := make([]currencyInfo, len(codes))
	for i, code := range codes {
		out[i] = describe(code, currencies.DefaultFlagStyle, currencies.DefaultFlagSize)
	}
	c.JSON(http.StatusOK, out)
}

// currency describes one currency, formatting ?amount= for ?locale= when given.
// Unknown codes are described with their fallbacks rather than rejected.
func (s *Server) currency(c *gin.Context) {

	// request for binding the query string
	type request struct {
		Amount *float64 `form:"amount"`
		Locale string   `form:"locale"`
		Style  string   `form:"style"`
		Size   *int     `form:"size"`
	}

	var req request
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	style, size, locale := currencies.DefaultFlagStyle, currencies.DefaultFlagSize, currencies.DefaultLocale
	if req.Style != "" {
		style = req.Style
	}
	if req.Size != nil {
		size = *req.Size
	}
	if req.Locale != "" {
		locale = req.Locale
	}

	code := strings.ToUpper(c.Param("code"))
	info := describe(code, style, size)
	if req.Amount != nil {
		info.Formatted = currencies.FormatLocale(*req.Amount, code, locale)
	}
	c.JSON(http.StatusOK, info)
}

// listLanguages lists the supported UI locales
func (s *Server) listLanguages(c *gin.Context) {
	locales := languages.Locales()
	names := make(map[string]string, len(locales))
	for _, l := range locales {
		names[l] = languages.Table[l].Name
	}
	c.JSON(http.StatusOK, gin.H{
		"default": languages.DefaultLocale,
		"locales": locales,
		"names":   names,
	})
}

// language returns the UI labels for a locale, falling back to the default locale
func (s *Server) language(c *gin.Context) {
	requested := c.Param("locale")
	locale := languages.Resolve(requested)
	c.JSON(http.StatusOK, gin.H{
		"requested": requested,
		"locale":    locale,
		"labels":    languages.Table[locale],
	})
}
