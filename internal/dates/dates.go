// Package dates resolves natural-language date expressions ("tomorrow",
// "next Friday", "in 10 days") to concrete calendar dates, preferring
// future interpretations for ambiguous ones.
package dates

import (
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Resolver wraps a rule-based date parser. It is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	parser *when.Parser
}

func NewResolver() *Resolver {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Resolver{parser: w}
}

// Spot returns the first date/time expression found in text, verbatim.
func (r *Resolver) Spot(text string) (string, bool) {
	res, err := r.parser.Parse(text, time.Now())
	if err != nil || res == nil {
		return "", false
	}
	return res.Text, true
}

// Resolve parses expression relative to now. An absent or unparsable
// expression resolves to now's date rather than an error: a question whose
// date the parser cannot read is still answerable as "today".
//
// A bare weekday name that lands on today is pushed a week forward, so
// "Friday" asked on a Friday means the next one.
func (r *Resolver) Resolve(expression string, now time.Time) time.Time {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return now
	}

	res, err := r.parser.Parse(expression, now)
	if err != nil || res == nil {
		return now
	}

	t := res.Time
	if isBareWeekday(expression) && SameDay(t, now) {
		t = t.AddDate(0, 0, 7)
	}
	return t
}

// Day truncates t to its local calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func isBareWeekday(expression string) bool {
	fields := strings.Fields(strings.ToLower(expression))
	if len(fields) == 2 && fields[0] == "on" {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return false
	}
	return weekdayNames[strings.Trim(fields[0], ",.?!")]
}
