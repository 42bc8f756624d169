// Package xer reads Primavera P6 XER exports: a line-oriented, tab-delimited
// text format where %T opens a table, %F declares its fields and %R carries a
// row.
package xer

import (
	"fmt"
	"sort"
	"strings"
)

const (
	markerTable  = "%T"
	markerFields = "%F"
	markerRow    = "%R"
	markerHeader = "ERMHDR"
)

// decoder accumulates tables line by line. notes collects the lenient
// decisions it took (truncated rows, stray markers) for strict mode.
type decoder struct {
	tables  map[string]*Table
	current *Table
	fields  []string
	header  *Header
	notes   []string
}

func newDecoder() *decoder {
	return &decoder{tables: make(map[string]*Table)}
}

// Decode splits XER content into tables keyed by name. It never fails: a
// malformed file yields an empty or partial map.
func Decode(content string) map[string]*Table {
	d := newDecoder()
	d.run(content)
	return d.tables
}

func normalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}

func (d *decoder) run(content string) {
	for i, line := range strings.Split(normalizeNewlines(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		d.line(i+1, parts)
	}
}

func (d *decoder) line(lineNo int, parts []string) {
	switch marker := strings.TrimSpace(parts[0]); marker {
	case markerTable:
		name := strings.TrimSpace(parts[1])
		t, ok := d.tables[name]
		if !ok {
			t = &Table{Name: name}
			d.tables[name] = t
		}
		d.current = t
		d.fields = nil

	case markerFields:
		if d.current == nil {
			d.note("line %d: %%F outside of a table", lineNo)
			return
		}
		fields := make([]string, 0, len(parts)-1)
		for _, f := range parts[1:] {
			fields = append(fields, strings.TrimSpace(f))
		}
		d.fields = fields
		d.current.Fields = fields

	case markerRow:
		if d.current == nil || len(d.fields) == 0 {
			d.note("line %d: %%R without a table and field list", lineNo)
			return
		}
		values := parts[1:]
		if len(values) != len(d.fields) {
			d.note("line %d: %s row has %d values for %d fields", lineNo, d.current.Name, len(values), len(d.fields))
		}
		n := min(len(values), len(d.fields))
		row := make(map[string]string, n)
		for j := 0; j < n; j++ {
			row[d.fields[j]] = strings.TrimSpace(values[j])
		}
		d.current.Rows = append(d.current.Rows, row)

	case markerHeader:
		h := &Header{Version: strings.TrimSpace(parts[1]), Raw: strings.Join(parts, "\t")}
		if len(parts) > 2 {
			h.ExportDate = strings.TrimSpace(parts[2])
		}
		d.header = h
	}
}

func (d *decoder) note(format string, args ...any) {
	d.notes = append(d.notes, fmt.Sprintf(format, args...))
}

// Summarize lists decoded tables sorted by name.
func Summarize(tables map[string]*Table) []TableSummary {
	out := make([]TableSummary, 0, len(tables))
	for _, t := range tables {
		out = append(out, TableSummary{Name: t.Name, Fields: t.Fields, Rows: len(t.Rows)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
