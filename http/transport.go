package http

import (
	"errors"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"go-currency-exchange/domain"
	"go-currency-exchange/exchange"
	"go-currency-exchange/geo"
	"net/http"
	"sort"
)

// History the conversion history exposed over HTTP, e.g. history.Store
type History interface {
	List() []domain.HistoryItem
	Clear()
}

// Server dependencies for HTTP Server functions
type Server struct {
	Exchange exchange.Service
	Geo      geo.Service
	History  History

	// DefaultTarget currency suggested as conversion target to visitors
	DefaultTarget domain.Currency

	logger log.Logger
	router *gin.Engine
}

// Option configures a Server
type Option func(*Server)

// WithDefaultTarget sets the suggested target currency. Defaults to USD.
func WithDefaultTarget(c domain.Currency) Option {
	return func(s *Server) {
		s.DefaultTarget = c
	}
}

// NewServer builds a Server with its routes registered
func NewServer(e exchange.Service, g geo.Service, h History, logger log.Logger, opts ...Option) *Server {
	server := &Server{
		Exchange:      e,
		Geo:           g,
		History:       h,
		DefaultTarget: geo.DefaultCurrency,
		logger:        logger,
		router:        gin.New(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(requestLogger(s.logger), gin.Recovery(), cors.Default())

	api := s.router.Group("/api")
	api.GET("/rates", s.rates)
	api.GET("/convert", s.convert)
	api.GET("/detect-currency", s.detectCurrency)
	api.GET("/currencies", s.listCurrencies)
	api.GET("/currencies/:code", s.currency)
	api.GET("/languages", s.listLanguages)
	api.GET("/languages/:locale", s.language)
	api.GET("/history", s.listHistory)
	api.DELETE("/history", s.clearHistory)
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// fail writes err as a JSON error, choosing the status from its kind
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownCurrency), errors.Is(err, domain.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrRatesUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// rates returns the latest rates
func (s *Server) rates(c *gin.Context) {
	r, err := s.Exchange.Rates(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// convert converts ?amount= of ?from= into ?to=
func (s *Server) convert(c *gin.Context) {

	// request for binding the query string
	type request struct {
		Amount *float64 `form:"amount" binding:"required"`
		From   string   `form:"from" binding:"required"`
		To     string   `form:"to" binding:"required"`
	}

	var req request
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := s.Exchange.Convert(c.Request.Context(), domain.Amount(*req.Amount), domain.Currency(req.From), domain.Currency(req.To))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// detectCurrency suggests a source currency from the caller's IP address
func (s *Server) detectCurrency(c *gin.Context) {
	ctx := c.Request.Context()

	country, currency, err := geo.Detect(ctx, s.Geo, c.ClientIP())
	if err != nil {
		s.logger.Log("msg", "country lookup failed", "ip", c.ClientIP(), "country", country, "err", err)
	}

	r, err := s.Exchange.Rates(ctx)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"detected_currency": currency,
			"available":         false,
			"error":             "Rates not loaded",
		})
		return
	}

	all := make([]domain.Currency, 0, len(r.Rates))
	for code := range r.Rates {
		all = append(all, code)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	_, available := r.Rates[currency]
	c.JSON(http.StatusOK, gin.H{
		"detected_currency": currency,
		"available":         available,
		"suggested_target":  s.DefaultTarget,
		"all_currencies":    all,
	})
}

func (s *Server) listHistory(c *gin.Context) {
	c.JSON(http.StatusOK, s.History.List())
}

func (s *Server) clearHistory(c *gin.Context) {
	s.History.Clear()
	c.Status(http.StatusNoContent)
}
