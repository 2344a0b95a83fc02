package postgres

import (
	"fmt"
	"strings"
)

// whereBuilder collects AND-ed conditions with positional args.
// Conditions use %[1]d for their placeholder number so one arg can appear several times.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(condFmt string, val any) {
	w.args = append(w.args, val)
	w.conds = append(w.conds, fmt.Sprintf(condFmt, len(w.args)))
}

// addSearch matches term as a case-insensitive substring of any of cols.
func (w *whereBuilder) addSearch(term string, cols ...string) {
	if term == "" || len(cols) == 0 {
		return
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE $%[1]d"
	}
	w.add("("+strings.Join(parts, " OR ")+")", likePattern(term))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}
