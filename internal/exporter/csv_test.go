package exporter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbfx/internal/features"
)

func buildTestTable(t *testing.T, reports []any) *features.Table {
	t.Helper()
	clock := func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	b := features.NewBuilder(features.NewExtractor(nil, features.WithClock(clock)), nil)
	return b.Build(context.Background(), reports)
}

func fullReport(id string) map[string]any {
	return map[string]any{
		"application_id": id,
		"data": map[string]any{
			"consumerfullcredit": map[string]any{
				"creditaccountsummary": map[string]any{
					"totaloutstandingdebt": "1,234.56",
				},
				"personaldetailssummary": map[string]any{
					"birthdate": "15/06/1990",
				},
			},
		},
	}
}

func TestCSVWriterWrite(t *testing.T) {
	table := buildTestTable(t, []any{
		fullReport("A1"),
		map[string]any{"application_id": "A2"}, // reduced record
	})

	var buf bytes.Buffer
	w := &CSVWriter{}
	require.NoError(t, w.Write(&buf, table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, strings.Join(features.Columns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "A1,"))

	fields := strings.Split(lines[1], ",")
	require.Len(t, fields, len(features.Columns))
	assert.Equal(t, "1234.56", fields[3], "total_outstanding_debt keeps its exact value")
	assert.Equal(t, "34", fields[14], "age on the frozen snapshot date")
	assert.Equal(t, "Unknown", fields[16])

	// The reduced record renders empty cells for every absent feature.
	assert.Equal(t, "A2"+strings.Repeat(",", len(features.Columns)-1), lines[2])
}

func TestCSVWriterBOM(t *testing.T) {
	table := buildTestTable(t, []any{fullReport("A1")})

	var buf bytes.Buffer
	w := NewCSVWriter()
	require.NoError(t, w.Write(&buf, table))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSVWriterWriteFile(t *testing.T) {
	table := buildTestTable(t, []any{fullReport("A1")})

	path := filepath.Join(t.TempDir(), "out", "features.csv")
	require.NoError(t, NewCSVWriter().WriteFile(path, table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "application_id")
	assert.Contains(t, string(data), "A1")
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil is empty cell", nil, ""},
		{"string passthrough", "Employed", "Employed"},
		{"int", 3, "3"},
		{"whole float stays short", 1000.0, "1000"},
		{"fractional float", 1234.56, "1234.56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.input))
		})
	}
}
