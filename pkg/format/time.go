package format

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var shortMonths = map[language.Base][12]string{
	mustBase("nl"): {"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	mustBase("fr"): {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	mustBase("en"): {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}

// Date renders t as a short date: "15 jun 2000" for Dutch and French
// locales, "Jun 15, 2000" for English. Other languages use English.
func Date(t time.Time, locale string) string {
	base, _ := parseLocale(locale).Base()
	months, ok := shortMonths[base]
	if !ok {
		base = mustBase("en")
		months = shortMonths[base]
	}
	m := months[t.Month()-1]
	if base == mustBase("en") {
		return fmt.Sprintf("%s %d, %d", m, t.Day(), t.Year())
	}
	return fmt.Sprintf("%d %s %d", t.Day(), m, t.Year())
}

// RelativeTime describes t relative to now in Dutch, falling back to a
// short date after a week.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Zojuist"
	case minutes < 60:
		return fmt.Sprintf("%d min geleden", minutes)
	case hours < 24:
		return fmt.Sprintf("%d uur geleden", hours)
	case days < 7:
		return fmt.Sprintf("%d dagen geleden", days)
	}
	return Date(t, DefaultLocale)
}

// Age returns the completed years between dob and now.
func Age(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// ParseDate accepts the backend date shapes: "2006-01-02" and RFC 3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// Sleep blocks for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
