package ical

import (
	"bufio"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

const foldAt = 75

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// EscapeText applies TEXT escaping for backslash, semicolon, comma and newline.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// Write renders cal as a VCALENDAR with CRLF line endings and lines folded at 75 octets.
func Write(w io.Writer, cal Calendar) error {
	bw := bufio.NewWriter(w)
	lw := &lineWriter{w: bw}

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + cal.ProdID)
	lw.line("CALSCALE:GREGORIAN")
	lw.line("METHOD:PUBLISH")
	for _, e := range cal.Events {
		lw.line("BEGIN:VEVENT")
		lw.line("UID:" + e.UID)
		lw.line("DTSTAMP:" + e.Stamp.UTC().Format(dateTimeUTCForm))
		lw.line(timeProperty("DTSTART", e.Start, e.AllDay))
		lw.line(timeProperty("DTEND", e.End, e.AllDay))
		if e.Summary != "" {
			lw.line("SUMMARY:" + EscapeText(e.Summary))
		}
		if e.Description != "" {
			lw.line("DESCRIPTION:" + EscapeText(e.Description))
		}
		lw.line("TRANSP:OPAQUE")
		lw.line("END:VEVENT")
	}
	lw.line("END:VCALENDAR")

	if lw.err != nil {
		return lw.err
	}
	return bw.Flush()
}

func timeProperty(name string, t time.Time, allDay bool) string {
	if allDay {
		return name + ";VALUE=DATE:" + t.Format(dateLayout)
	}
	return name + ":" + t.UTC().Format(dateTimeUTCForm)
}

type lineWriter struct {
	w   *bufio.Writer
	err error
}

// line folds on rune boundaries so multi-byte characters are never split.
func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	limit := foldAt
	for len(s) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		lw.write(s[:cut])
		lw.write("\r\n ")
		s = s[cut:]
		limit = foldAt - 1
	}
	lw.write(s)
	lw.write("\r\n")
}

func (lw *lineWriter) write(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = lw.w.WriteString(s)
}
