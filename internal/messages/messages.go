// Package messages provides the user-facing message table of the API.
package messages

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed lang/en.yml
var fallbackTable []byte

// DateLayout renders timestamps in the shape of a JavaScript Date string.
// The zone is printed as its abbreviation, not the long zone name.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// Table holds every message the API sends to clients.
type Table struct {
	Welcome         string `yaml:"welcome" validate:"required"`
	Entry           string `yaml:"entry" validate:"required"`
	Success         string `yaml:"success" validate:"required"`
	Duplicate       string `yaml:"duplicate" validate:"required"`
	NotFound        string `yaml:"four" validate:"required"`
	WordNotFound    string `yaml:"error" validate:"required"`
	Internal        string `yaml:"internal" validate:"required"`
	InvalidJSON     string `yaml:"json" validate:"required"`
	MissingQuery    string `yaml:"missing_query" validate:"required"`
	MissingFields   string `yaml:"missing_fields" validate:"required"`
	InvalidWord     string `yaml:"invalid_word" validate:"required"`
	EmptyDefinition string `yaml:"empty_definition" validate:"required"`
}

// Load reads the message table from tablePath.
// It falls back to the embedded English table when tablePath is empty or unusable.
func Load(tablePath string) (*Table, error) {
	if tablePath != "" {
		table, err := readFile(tablePath)
		if err == nil {
			return table, nil
		}
		slog.Default().Warn("failed to load a message table",
			slog.String("tablePath", tablePath),
			slog.Any("error", err),
		)
	}

	table, err := parse(fallbackTable)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded message table: %w", err)
	}
	return table, nil
}

// Default returns the embedded English table.
func Default() *Table {
	table, err := parse(fallbackTable)
	if err != nil {
		panic(fmt.Errorf("parse(fallbackTable) > %w", err))
	}
	return table
}

func readFile(tablePath string) (*Table, error) {
	contents, err := os.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}
	return parse(contents)
}

func parse(contents []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(contents, &table); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if err := validator.New().Struct(table); err != nil {
		return nil, fmt.Errorf("invalid message table: %w", err)
	}
	return &table, nil
}

// Recorded builds the two-line body returned after a new entry is stored.
func (t Table) Recorded(requestCount int64, at time.Time, totalWords int) string {
	success := strings.Replace(t.Success, "%1", strconv.FormatInt(requestCount, 10), 1)
	success = strings.Replace(success, "%2", at.Format(DateLayout), 1)
	success = strings.Replace(success, "%3", strconv.Itoa(totalWords), 1)
	return t.Entry + "\n" + success
}
