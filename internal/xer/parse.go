package xer

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type options struct {
	strict bool
}

// Option configures Parse.
type Option func(*options)

// WithStrict reports rows the lenient decoder truncated or dropped as
// Warnings. Parsed records are identical with or without it.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// Parse decodes XER content and maps it to typed records. It always returns
// a result; problems are reported in Errors (and Warnings in strict mode).
func Parse(content string, opts ...Option) ParseResult {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	d := newDecoder()
	d.run(content)

	notes := d.notes
	res := mapTables(d.tables, &notes)
	res.Header = d.header
	if o.strict {
		res.Warnings = notes
	}
	return res
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeBytes turns raw file bytes into text. A UTF-8 BOM is dropped; bytes
// that are not valid UTF-8 are read as Windows-1252, P6's default export
// code page.
func DecodeBytes(b []byte) string {
	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// ParseFile reads and parses an XER file. Only I/O failures are returned as
// errors.
func ParseFile(path string, opts ...Option) (ParseResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("reading xer file: %w", err)
	}
	return Parse(DecodeBytes(data), opts...), nil
}
