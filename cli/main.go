package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/go-kit/log"
	"go-currency-exchange/config"
	"go-currency-exchange/currencies"
	"go-currency-exchange/domain"
	"go-currency-exchange/exchange"
	"go-currency-exchange/frankfurter"
	"go-currency-exchange/logging"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	base := flag.String("base", string(cfg.BaseCurrency), "currency to convert from")
	locale := flag.String("locale", currencies.DefaultLocale, "locale used to format amounts")
	flag.Parse()

	logger := logging.New(os.Stderr, cfg.LogLevel)

	rates := frankfurter.NewService(cfg.RatesURL, cfg.HTTPTimeout)
	rates = frankfurter.NewLoggingService(log.With(logger, "component", "frankfurter_rest"), rates)
	service := exchange.NewService(rates, domain.Currency(strings.ToUpper(*base)))

	if err := run(context.Background(), service, *locale, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the interactive loop: read an amount in the base currency, then a target currency
func run(ctx context.Context, service exchange.Service, locale string, in io.Reader, out io.Writer) error {
	r, err := service.Rates(ctx)
	if err != nil {
		return fmt.Errorf("fetching rates: %w", err)
	}
	from := r.Base

	fmt.Fprintf(out, "Available currencies (base: %v):\n", from)
	codes := make([]string, 0, len(r.Rates))
	for code := range r.Rates {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	for i := 0; i < len(codes); i += 8 {
		end := i + 8
		if end > len(codes) {
			end = len(codes)
		}
		fmt.Fprintf(out, "  %v\n", strings.Join(codes[i:end], "  "))
	}

	fmt.Fprintf(out, "\nRates as of: %v\n", r.Date)
	fmt.Fprintln(out, "Type 'quit' or 'exit' to quit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	prompt := func(format string, a ...interface{}) (string, bool) {
		fmt.Fprintf(out, format, a...)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		text, ok := prompt("Enter amount in %v (e.g. 1000): ", from)
		if !ok {
			return scanner.Err()
		}
		if text == "" {
			continue
		}
		if strings.EqualFold(text, "quit") || strings.EqualFold(text, "exit") {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}

		amount, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintln(out, "Invalid amount. Please enter a number.")
			continue
		}

		to, ok := prompt("To currency (e.g. USD): ")
		if !ok {
			return scanner.Err()
		}
		if to == "" {
			continue
		}

		result, err := service.Convert(ctx, domain.Amount(amount), from, domain.Currency(to))
		switch {
		case errors.Is(err, domain.ErrUnknownCurrency):
			fmt.Fprintf(out, "Unknown currency: %v. Try again.\n", strings.ToUpper(to))
			continue
		case errors.Is(err, domain.ErrInvalidAmount):
			fmt.Fprintln(out, "Invalid amount. Please enter a number.")
			continue
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "→ %v = %v (%v)\n\n",
			currencies.FormatLocale(float64(result.Amount), string(result.From), locale),
			currencies.FormatLocale(float64(result.Result), string(result.To), locale),
			currencies.Name(string(result.To)),
		)
	}
}
