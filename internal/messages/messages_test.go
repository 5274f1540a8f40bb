package messages

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name         string
		tableContent string
		noFile       bool
		wantEntry    string
		wantNotFound string
	}{
		{
			name:         "no table path uses embedded table",
			noFile:       true,
			wantEntry:    "New entry recorded",
			wantNotFound: "404 Not Found",
		},
		{
			name: "custom table",
			tableContent: `welcome: "Hello!"
entry: "Recorded"
success: "#%1 at %2, %3 words"
duplicate: "Duplicate"
four: "Nothing here"
error: "Unknown word"
internal: "Oops"
json: "Bad JSON"
missing_query: "Need word"
missing_fields: "Need both"
invalid_word: "Bad word"
empty_definition: "Bad definition"
`,
			wantEntry:    "Recorded",
			wantNotFound: "Nothing here",
		},
		{
			name: "incomplete table falls back to embedded table",
			tableContent: `welcome: "Hello!"
entry: "Recorded"
`,
			wantEntry:    "New entry recorded",
			wantNotFound: "404 Not Found",
		},
		{
			name:         "invalid YAML falls back to embedded table",
			tableContent: "welcome: [[[",
			wantEntry:    "New entry recorded",
			wantNotFound: "404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tablePath := ""
			if !tt.noFile {
				tablePath = filepath.Join(t.TempDir(), "messages.yml")
				require.NoError(t, os.WriteFile(tablePath, []byte(tt.tableContent), 0644))
			}

			got, err := Load(tablePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEntry, got.Entry)
			assert.Equal(t, tt.wantNotFound, got.NotFound)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestDefault(t *testing.T) {
	got := Default()

	assert.Equal(t, "Welcome to the API!", got.Welcome)
	assert.Equal(t, "That word already exists !", got.Duplicate)
	assert.Equal(t, "Word Not Found", got.WordNotFound)
	assert.Equal(t, "Internal Server Error", got.Internal)
	assert.Equal(t, "Invalid JSON Format", got.InvalidJSON)
	assert.Equal(t, "Invalid query. 'word' parameter is required.", got.MissingQuery)
	assert.Equal(t, "Both 'word' and 'definition' fields are required.", got.MissingFields)
	assert.Equal(t, "Invalid input. Word must contain only letters and must not be empty.", got.InvalidWord)
	assert.Equal(t, "Invalid input. Definition must not be empty.", got.EmptyDefinition)
}

func TestTable_Recorded(t *testing.T) {
	at := time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)

	got := Default().Recorded(12, at, 3)

	assert.Equal(t,
		"New entry recorded\nRequest 12 updated on Fri Mar 07 2025 14:05:09 GMT+0000 (UTC). Total number of words: 3",
		got,
	)
}

func TestTable_Recorded_PrintsZoneAbbreviation(t *testing.T) {
	at := time.Date(2025, 3, 7, 23, 5, 9, 0, time.FixedZone("JST", 9*60*60))

	got := Default().Recorded(1, at, 1)

	assert.Contains(t, got, "updated on Fri Mar 07 2025 23:05:09 GMT+0900 (JST).")
}

func TestTable_Recorded_ReplacesFirstPlaceholderOnly(t *testing.T) {
	table := Table{Entry: "Recorded", Success: "%1 %1 %3"}

	got := table.Recorded(5, time.Time{}, 9)

	assert.Equal(t, "Recorded\n5 %1 9", got)
}
