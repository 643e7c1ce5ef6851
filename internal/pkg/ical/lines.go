// Package ical reads and writes the subset of RFC 5545 used for availability feeds:
// VCALENDAR documents holding VEVENTs with date or date-time bounds.
//
// Reading happens in three explicit stages: Unfold joins continuation lines,
// ParseContentLine splits each logical line into name, parameters and value, and
// Parse assembles the content lines into events.
package ical

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrMalformed = errors.New("malformed icalendar data")

const maxLineBytes = 1 << 20

// Unfold returns the logical lines of r. A physical line starting with a space or a tab
// continues the previous one; the single leading whitespace character is dropped.
func Unfold(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		lines   []string
		current strings.Builder
		started bool
	)
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		if raw == "" {
			continue
		}
		if raw[0] == ' ' || raw[0] == '\t' {
			if !started {
				return nil, fmt.Errorf("%w: continuation before first line", ErrMalformed)
			}
			current.WriteString(raw[1:])
			continue
		}
		if started {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(raw)
		started = true
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read icalendar: %w", err)
	}
	if started {
		lines = append(lines, current.String())
	}
	return lines, nil
}

// ContentLine is one logical "NAME;PARAM=VALUE:value" line. Names and parameter keys are upper-cased.
type ContentLine struct {
	Name   string
	Params map[string]string
	Value  string
}

func (l ContentLine) Param(key string) string {
	return l.Params[strings.ToUpper(key)]
}

// ParseContentLine splits a logical line. Colons and semicolons inside quoted parameter values
// do not end the parameter section.
func ParseContentLine(line string) (ContentLine, error) {
	inQuotes := false
	colon := -1
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				colon = i
			}
		}
		if colon >= 0 {
			break
		}
	}
	if colon <= 0 {
		return ContentLine{}, fmt.Errorf("%w: no value separator in %q", ErrMalformed, truncate(line))
	}

	head, value := line[:colon], line[colon+1:]
	parts := splitUnquoted(head, ';')
	cl := ContentLine{Name: strings.ToUpper(strings.TrimSpace(parts[0])), Value: value}
	if cl.Name == "" {
		return ContentLine{}, fmt.Errorf("%w: empty property name", ErrMalformed)
	}
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return ContentLine{}, fmt.Errorf("%w: parameter without value in %q", ErrMalformed, truncate(line))
		}
		if cl.Params == nil {
			cl.Params = make(map[string]string, len(parts)-1)
		}
		cl.Params[strings.ToUpper(strings.TrimSpace(k))] = strings.Trim(v, `"`)
	}
	return cl, nil
}

func splitUnquoted(s string, sep byte) []string {
	var (
		out      []string
		inQuotes bool
		last     int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case sep:
			if !inQuotes {
				out = append(out, s[last:i])
				last = i + 1
			}
		}
	}
	return append(out, s[last:])
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
