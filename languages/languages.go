// Package languages is the static UI translation table.
package languages

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
)

// DefaultLocale locale used whenever a requested one is not supported
const DefaultLocale = "en"

// Labels UI strings for one locale
type Labels struct {
	Name           string `json:"name"`
	Converter      string `json:"converter"`
	Refresh        string `json:"refresh"`
	Convert        string `json:"convert"`
	SourceCurrency string `json:"sourceCurrency"`
	TargetCurrency string `json:"targetCurrency"`
	AmountToSend   string `json:"amountToSend"`
	Calculate      string `json:"calculate"`
	ResultTitle    string `json:"resultTitle"`
	IsRoughly      string `json:"isRoughly"`
	YourLocation   string `json:"yourLocation"`
	TopCurrencies  string `json:"topCurrencies"`
	History        string `json:"history"`
	ClearAll       string `json:"clearAll"`
	NoHistory      string `json:"noHistory"`
	Vs             string `json:"vs"`
}

// Map returns the labels keyed by their JSON names
func (l Labels) Map() map[string]string {
	return map[string]string{
		"name":           l.Name,
		"converter":      l.Converter,
		"refresh":        l.Refresh,
		"convert":        l.Convert,
		"sourceCurrency": l.SourceCurrency,
		"targetCurrency": l.TargetCurrency,
		"amountToSend":   l.AmountToSend,
		"calculate":      l.Calculate,
		"resultTitle":    l.ResultTitle,
		"isRoughly":      l.IsRoughly,
		"yourLocation":   l.YourLocation,
		"topCurrencies":  l.TopCurrencies,
		"history":        l.History,
		"clearAll":       l.ClearAll,
		"noHistory":      l.NoHistory,
		"vs":             l.Vs,
	}
}

// Table labels for every supported locale. Do not modify.
var Table = map[string]Labels{
	"en": {
		Name:           "English",
		Converter:      "Currency Converter",
		Refresh:        "Refresh",
		Convert:        "Convert",
		SourceCurrency: "Source Currency",
		TargetCurrency: "Target Currency",
		AmountToSend:   "Amount to Send",
		Calculate:      "Calculate",
		ResultTitle:    "Exchange Rate Result",
		IsRoughly:      "is roughly",
		YourLocation:   "Your Location",
		TopCurrencies:  "Top Currencies",
		History:        "History",
		ClearAll:       "Clear All",
		NoHistory:      "No recent operations",
		Vs:             "vs",
	},
	"ms": {
		Name:           "Bahasa Melayu",
		Converter:      "Penukar Mata Wang",
		Refresh:        "Muat Semula",
		Convert:        "Tukar",
		SourceCurrency: "Mata Wang Asal",
		TargetCurrency: "Mata Wang Sasaran",
		AmountToSend:   "Jumlah untuk Dihantar",
		Calculate:      "Kira Sekarang",
		ResultTitle:    "Keputusan Kadar Pertukaran",
		IsRoughly:      "adalah kira-kira",
		YourLocation:   "Lokasi Anda",
		TopCurrencies:  "Mata Wang Utama",
		History:        "Sejarah",
		ClearAll:       "Padam Semua",
		NoHistory:      "Tiada operasi terkini",
		Vs:             "berbanding",
	},
	"zh": {
		Name:           "中文",
		Converter:      "汇率转换器",
		Refresh:        "刷新",
		Convert:        "转换",
		SourceCurrency: "原货币",
		TargetCurrency: "目标货币",
		AmountToSend:   "发送金额",
		Calculate:      "立即计算",
		ResultTitle:    "汇率查询结果",
		IsRoughly:      "大约等于",
		YourLocation:   "您的位置",
		TopCurrencies:  "热门货币",
		History:        "历史记录",
		ClearAll:       "清空全部",
		NoHistory:      "暂无记录",
		Vs:             "对比",
	},
}

var (
	// supported locales, DefaultLocale first so the matcher falls back to it
	supported []string
	matcher   language.Matcher
)

func init() {
	if err := validate(Table); err != nil {
		panic(err)
	}

	supported = []string{DefaultLocale}
	for locale := range Table {
		if locale != DefaultLocale {
			supported = append(supported, locale)
		}
	}
	sort.Strings(supported[1:])

	tags := make([]language.Tag, len(supported))
	for i, locale := range supported {
		tags[i] = language.MustParse(locale)
	}
	matcher = language.NewMatcher(tags)
}

// validate checks the default locale exists and no locale leaves a label empty
func validate(table map[string]Labels) error {
	if _, ok := table[DefaultLocale]; !ok {
		return fmt.Errorf("languages: default locale %q missing", DefaultLocale)
	}
	for locale, labels := range table {
		for key, text := range labels.Map() {
			if text == "" {
				return fmt.Errorf("languages: locale %q has no label for %q", locale, key)
			}
		}
	}
	return nil
}

// Locales returns the supported locales, sorted
func Locales() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	sort.Strings(out)
	return out
}

// Resolve picks the supported locale closest to the requested BCP 47 tag,
// e.g. "ms-MY" resolves to "ms". Unsupported or malformed tags resolve to DefaultLocale.
func Resolve(locale string) string {
	if _, ok := Table[locale]; ok {
		return locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultLocale
	}
	return supported[index]
}

// Lookup returns the labels for the resolved locale
func Lookup(locale string) Labels {
	return Table[Resolve(locale)]
}

// T returns a single label by key. Unknown keys come back unchanged.
func T(locale, key string) string {
	if text, ok := Lookup(locale).Map()[key]; ok {
		return text
	}
	return key
}
