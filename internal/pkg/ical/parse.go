package ical

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Event is a VEVENT reduced to what availability needs. End is exclusive.
type Event struct {
	UID         string
	Stamp       time.Time
	Start       time.Time
	End         time.Time
	AllDay      bool
	Summary     string
	Description string
}

type Calendar struct {
	ProdID string
	Events []Event
	// Skipped counts VEVENTs dropped for lacking a usable DTSTART.
	Skipped int
}

const (
	dateLayout      = "20060102"
	dateTimeLayout  = "20060102T150405"
	dateTimeUTCForm = "20060102T150405Z"
)

// Parse reads a whole document. Components other than VEVENT, including VALARMs nested
// inside an event, are skipped.
func Parse(r io.Reader) (*Calendar, error) {
	lines, err := Unfold(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(lines)
}

func ParseLines(lines []string) (*Calendar, error) {
	var (
		cal       Calendar
		inCal     bool
		sawCal    bool
		event     *Event
		hasStart  bool
		nestDepth int
	)

	for _, raw := range lines {
		cl, err := ParseContentLine(raw)
		if err != nil {
			return nil, err
		}
		switch cl.Name {
		case "BEGIN":
			comp := strings.ToUpper(cl.Value)
			switch {
			case comp == "VCALENDAR" && !inCal:
				inCal, sawCal = true, true
			case !inCal:
				return nil, fmt.Errorf("%w: %s outside VCALENDAR", ErrMalformed, comp)
			case comp == "VEVENT" && event == nil && nestDepth == 0:
				event, hasStart = &Event{}, false
			default:
				nestDepth++
			}
			continue
		case "END":
			comp := strings.ToUpper(cl.Value)
			switch {
			case nestDepth > 0:
				nestDepth--
			case comp == "VEVENT" && event != nil:
				if hasStart {
					finishEvent(event)
					cal.Events = append(cal.Events, *event)
				} else {
					cal.Skipped++
				}
				event = nil
			case comp == "VCALENDAR" && inCal:
				if event != nil {
					return nil, fmt.Errorf("%w: unterminated VEVENT", ErrMalformed)
				}
				inCal = false
			default:
				return nil, fmt.Errorf("%w: unexpected END:%s", ErrMalformed, comp)
			}
			continue
		}

		if !inCal || nestDepth > 0 {
			continue
		}
		if event == nil {
			if cl.Name == "PRODID" {
				cal.ProdID = cl.Value
			}
			continue
		}

		switch cl.Name {
		case "UID":
			event.UID = strings.TrimSpace(cl.Value)
		case "SUMMARY":
			event.Summary = UnescapeText(cl.Value)
		case "DESCRIPTION":
			event.Description = UnescapeText(cl.Value)
		case "DTSTAMP":
			if t, _, err := parseTime(cl); err == nil {
				event.Stamp = t
			}
		case "DTSTART":
			t, allDay, err := parseTime(cl)
			if err != nil {
				return nil, err
			}
			event.Start, event.AllDay, hasStart = t, allDay, true
		case "DTEND":
			t, _, err := parseTime(cl)
			if err != nil {
				return nil, err
			}
			event.End = t
		}
	}

	if !sawCal {
		return nil, fmt.Errorf("%w: missing BEGIN:VCALENDAR", ErrMalformed)
	}
	if inCal || event != nil {
		return nil, fmt.Errorf("%w: unterminated VCALENDAR", ErrMalformed)
	}
	return &cal, nil
}

// finishEvent gives all-day events without DTEND their implied one-day length.
func finishEvent(e *Event) {
	if e.End.IsZero() && e.AllDay {
		e.End = e.Start.AddDate(0, 0, 1)
	}
	if e.End.IsZero() {
		e.End = e.Start
	}
}

// parseTime accepts DATE values and DATE-TIME values in UTC, with a TZID, or floating.
func parseTime(cl ContentLine) (time.Time, bool, error) {
	v := strings.TrimSpace(cl.Value)
	if strings.EqualFold(cl.Param("VALUE"), "DATE") || len(v) == len(dateLayout) {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: bad %s date %q", ErrMalformed, cl.Name, v)
		}
		return t, true, nil
	}
	if strings.HasSuffix(v, "Z") {
		t, err := time.Parse(dateTimeUTCForm, v)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: bad %s time %q", ErrMalformed, cl.Name, v)
		}
		return t, false, nil
	}
	loc := time.UTC
	if tzid := cl.Param("TZID"); tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
	}
	t, err := time.ParseInLocation(dateTimeLayout, v, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: bad %s time %q", ErrMalformed, cl.Name, v)
	}
	return t, false, nil
}

// UnescapeText reverses TEXT escaping: \\ \; \, \n and \N.
func UnescapeText(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
