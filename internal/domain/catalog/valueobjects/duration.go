package valueobjects

import (
	"fmt"
	"time"
)

// DurationUnit is the calendar unit a package duration is expressed in.
type DurationUnit string

const (
	UnitMinutes DurationUnit = "minutes"
	UnitDays    DurationUnit = "days"
	UnitMonths  DurationUnit = "months"
	UnitYears   DurationUnit = "years"
)

func NewDurationUnit(s string) (DurationUnit, error) {
	u := DurationUnit(s)
	if !u.IsValid() {
		return "", fmt.Errorf("invalid duration unit: %s", s)
	}
	return u, nil
}

func (u DurationUnit) IsValid() bool {
	switch u {
	case UnitMinutes, UnitDays, UnitMonths, UnitYears:
		return true
	default:
		return false
	}
}

func (u DurationUnit) String() string {
	return string(u)
}

// Duration is a package's subscription term.
type Duration struct {
	value int
	unit  DurationUnit
}

func NewDuration(value int, unit DurationUnit) (Duration, error) {
	if value <= 0 {
		return Duration{}, fmt.Errorf("duration value must be positive, got %d", value)
	}
	if !unit.IsValid() {
		return Duration{}, fmt.Errorf("invalid duration unit: %s", unit)
	}
	return Duration{value: value, unit: unit}, nil
}

func (d Duration) Value() int {
	return d.value
}

func (d Duration) Unit() DurationUnit {
	return d.unit
}

// AddTo returns t advanced by the duration. Months and years use calendar
// arithmetic so that a one-month term bought on Jan 31 does not silently
// become a 28-day term.
func (d Duration) AddTo(t time.Time) time.Time {
	switch d.unit {
	case UnitMinutes:
		return t.Add(time.Duration(d.value) * time.Minute)
	case UnitDays:
		return t.AddDate(0, 0, d.value)
	case UnitMonths:
		return t.AddDate(0, d.value, 0)
	case UnitYears:
		return t.AddDate(d.value, 0, 0)
	default:
		return t
	}
}

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.value, d.unit)
}
