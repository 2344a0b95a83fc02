package leadimport

import (
	"strings"
	"unicode/utf8"

	"github.com/baechuer/leads-api/internal/domain"
)

const utf8BOM = "\ufeff"

// Row is one data line keyed by normalized header. Only non-empty cells are present.
type Row struct {
	Number int
	Values map[string]string
}

// Parse decodes an uploaded CSV file into data rows. Rows are numbered from 2,
// the header being row 1 after blank lines are dropped.
func Parse(content []byte) ([]Row, error) {
	if !utf8.Valid(content) {
		return nil, domain.ErrInvalidEncoding()
	}
	text := strings.TrimPrefix(string(content), utf8BOM)

	lines := splitLines(text)
	if len(lines) < 2 {
		return nil, domain.ErrInsufficientRows()
	}

	headerCells := tokenize(lines[0])
	headers := make([]string, len(headerCells))
	for i, h := range headerCells {
		headers[i] = normalizeHeader(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for i, line := range lines[1:] {
		values := tokenize(line)
		row := Row{Number: i + 2, Values: make(map[string]string, len(headers))}
		for idx, h := range headers {
			if idx < len(values) && values[idx] != "" {
				row.Values[h] = values[idx]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// tokenize splits on commas outside double quotes. Every quote toggles the
// quoted state and is dropped; there is no escape for a literal quote.
func tokenize(line string) []string {
	var (
		out      []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(out, strings.TrimSpace(cur.String()))
}

func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(h), " ", "")
}

// first returns the value of the first alias present in the row.
func (r Row) first(keys ...string) string {
	for _, k := range keys {
		if v, ok := r.Values[k]; ok {
			return v
		}
	}
	return ""
}
