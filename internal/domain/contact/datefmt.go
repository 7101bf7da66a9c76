package contact

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for hosts without /usr/share/zoneinfo
)

// DefaultTimeZone is the zone the coworking space operates in. Dates shown
// to staff and submitters use it.
const DefaultTimeZone = "Europe/Madrid"

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LoadLocation resolves name, falling back to DefaultTimeZone when name is
// empty.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimeZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", name, err)
	}
	return loc, nil
}

// FormatDate renders t as an es-ES short date, e.g. "18/10/2026".
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(orUTC(loc)).Format("2/1/2006")
}

// FormatDateTime renders t as an es-ES short date and time, e.g.
// "18/10/2026, 14:05:09".
func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(orUTC(loc)).Format("2/1/2006, 15:04:05")
}

// FormatLong renders t with the month spelled out in Spanish, e.g.
// "18 de octubre de 2026, 14:05".
func FormatLong(t time.Time, loc *time.Location) string {
	lt := t.In(orUTC(loc))
	return fmt.Sprintf("%d de %s de %d, %02d:%02d",
		lt.Day(), spanishMonths[lt.Month()-1], lt.Year(), lt.Hour(), lt.Minute())
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
