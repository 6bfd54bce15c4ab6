package main

import (
	"embed"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

const defaultLocale = "ml"

// Template names inside a compiled Locale
const (
	promptTemplate = "prompt"

	fallbackSummary    = "summary"
	fallbackProfit     = "profit"
	fallbackLoss       = "loss"
	fallbackTopExpense = "top_expense"
	fallbackIncome     = "income"
)

var fallbackKeys = []string{fallbackSummary, fallbackProfit, fallbackLoss, fallbackTopExpense, fallbackIncome}

// PeriodText holds the words used for one period
type PeriodText struct {
	// Label names the window inside the prompt ("Last 7 Days")
	Label string `yaml:"label"`
	// Title prefixes the fallback summary title
	Title string `yaml:"title"`
}

// IncomeLeaders are the headlines for the fallback income insight
type IncomeLeaders struct {
	Online  string `yaml:"online"`
	Offline string `yaml:"offline"`
}

// Locale is a catalog of every user-facing string: the prompt sent to the
// model, the fallback insight templates and the fixed no-data and error
// insights. Title and message fields of fallback entries and the prompt are
// text/template sources.
type Locale struct {
	Code          string                   `yaml:"-"`
	Language      string                   `yaml:"language"`
	Periods       map[string]PeriodText    `yaml:"periods"`
	NoData        InsightRecord            `yaml:"no_data"`
	Failure       InsightRecord            `yaml:"error"`
	Fallback      map[string]InsightRecord `yaml:"fallback"`
	IncomeLeaders IncomeLeaders            `yaml:"income_leaders"`
	Prompt        string                   `yaml:"prompt"`

	templates *template.Template
}

// loadLocale reads the catalog from path when given, otherwise from the
// embedded locales/<code>.yaml.
func loadLocale(code, path string) (*Locale, error) {
	if code == "" {
		code = defaultLocale
	}

	var (
		raw []byte
		err error
	)
	if path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = localeFS.ReadFile("locales/" + code + ".yaml")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read locale %q: %w", code, err)
	}

	return parseLocale(code, raw)
}

func parseLocale(code string, raw []byte) (*Locale, error) {
	var locale Locale
	if err := yaml.Unmarshal(raw, &locale); err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", code, err)
	}
	locale.Code = code

	if err := locale.compile(); err != nil {
		return nil, err
	}
	return &locale, nil
}

// compile parses every template and dry-runs it against an empty view so a
// bad field reference fails at load time instead of mid-request.
func (l *Locale) compile() error {
	if strings.TrimSpace(l.Prompt) == "" {
		return fmt.Errorf("locale %q: prompt is empty", l.Code)
	}
	if _, ok := l.Periods[string(PeriodToday)]; !ok {
		return fmt.Errorf("locale %q: periods.today is required", l.Code)
	}
	for name, record := range map[string]InsightRecord{"no_data": l.NoData, "error": l.Failure} {
		if err := validateInsight(record); err != nil {
			return fmt.Errorf("locale %q: %s: %w", l.Code, name, err)
		}
	}

	root := template.New(l.Code)
	if _, err := root.New(promptTemplate).Parse(l.Prompt); err != nil {
		return fmt.Errorf("locale %q: prompt: %w", l.Code, err)
	}
	if err := root.ExecuteTemplate(&strings.Builder{}, promptTemplate, promptView{}); err != nil {
		return fmt.Errorf("locale %q: prompt: %w", l.Code, err)
	}

	for _, key := range fallbackKeys {
		record, ok := l.Fallback[key]
		if !ok {
			return fmt.Errorf("locale %q: fallback.%s is required", l.Code, key)
		}
		if !insightTypes[record.Type] {
			return fmt.Errorf("locale %q: fallback.%s has unknown type %q", l.Code, key, record.Type)
		}
		for suffix, text := range map[string]string{"title": record.Title, "message": record.Message} {
			name := key + "." + suffix
			if _, err := root.New(name).Parse(text); err != nil {
				return fmt.Errorf("locale %q: fallback.%s: %w", l.Code, name, err)
			}
			if err := root.ExecuteTemplate(&strings.Builder{}, name, fallbackView{}); err != nil {
				return fmt.Errorf("locale %q: fallback.%s: %w", l.Code, name, err)
			}
		}
	}

	l.templates = root
	return nil
}

// period returns the words for p; unrecognized periods share today's words
// since they share today's window.
func (l *Locale) period(p Period) PeriodText {
	if text, ok := l.Periods[string(p)]; ok {
		return text
	}
	return l.Periods[string(PeriodToday)]
}

func (l *Locale) render(name string, data any) (string, error) {
	var b strings.Builder
	if err := l.templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// fallbackInsight fills one fallback entry. Templates were dry-run in
// compile, so a failure here only logs and keeps the raw text.
func (l *Locale) fallbackInsight(key string, view fallbackView) InsightRecord {
	record := l.Fallback[key]

	title, err := l.render(key+".title", view)
	if err != nil {
		log.Printf("Error rendering fallback %s title: %v", key, err)
		title = record.Title
	}
	message, err := l.render(key+".message", view)
	if err != nil {
		log.Printf("Error rendering fallback %s message: %v", key, err)
		message = record.Message
	}

	return InsightRecord{Type: record.Type, Title: title, Message: message, Icon: record.Icon}
}
