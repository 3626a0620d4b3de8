package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDayNotAvailable   = errors.New("turf has no availability on the requested day")
	ErrSlotNotFound      = errors.New("no advertised slot covers the requested time window")
	ErrInsufficientSeats = errors.New("not enough seats left in the requested slot")
	ErrInvalidTimeWindow = errors.New("booking window must be non-empty")
)

// TimeSlot is a bounded time range within a day with its own seat capacity.
// Start and End are clock times in "15:04" format.
type TimeSlot struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	AvailableSeats int    `json:"availableSeats"`
}

// Covers reports whether the slot fully contains the [from, to) window.
// Clock strings in "15:04" format compare correctly as plain strings.
func (s TimeSlot) Covers(from, to string) bool {
	return s.Start <= from && to <= s.End
}

// DayAvailability lists the bookable slots advertised for one weekday.
type DayAvailability struct {
	Day   string     `json:"day"`
	Slots []TimeSlot `json:"slots"`
}

// AvailabilitySlots is the JSONB availability document stored on a TurfOwner:
// a list of {day, slots:[{start,end,availableSeats}]} entries.
type AvailabilitySlots []DayAvailability

// Value implements driver.Valuer so gorm can write the document as jsonb.
func (a AvailabilitySlots) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for reading the jsonb column.
func (a *AvailabilitySlots) Scan(value interface{}) error {
	if value == nil {
		*a = AvailabilitySlots{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for availability slots: %T", value)
	}
	return json.Unmarshal(data, a)
}

// Normalize uppercases day names so the stored document matches the
// uppercase JSONB containment filter used by search.
func (a AvailabilitySlots) Normalize() AvailabilitySlots {
	out := make(AvailabilitySlots, len(a))
	for i, d := range a {
		d.Day = strings.ToUpper(d.Day)
		out[i] = d
	}
	return out
}

// FindDay returns the availability entry for the given weekday name,
// matched case-insensitively.
func (a AvailabilitySlots) FindDay(day string) (*DayAvailability, bool) {
	for i := range a {
		if strings.EqualFold(a[i].Day, day) {
			return &a[i], true
		}
	}
	return nil, false
}

// Reserve takes seats out of the slot covering [from, to) on the given day.
// The slot is removed from the day once its capacity reaches zero, and the
// day entry is removed once it has no slots left. Returns the updated
// document; the receiver is not modified on failure.
func (a AvailabilitySlots) Reserve(day, from, to string, seats int) (AvailabilitySlots, error) {
	if from >= to {
		return nil, ErrInvalidTimeWindow
	}

	entry, ok := a.FindDay(day)
	if !ok {
		return nil, ErrDayNotAvailable
	}

	slotIdx := -1
	for i, slot := range entry.Slots {
		if slot.Covers(from, to) {
			slotIdx = i
			break
		}
	}
	if slotIdx == -1 {
		return nil, ErrSlotNotFound
	}
	if entry.Slots[slotIdx].AvailableSeats < seats {
		return nil, ErrInsufficientSeats
	}

	updated := make(AvailabilitySlots, 0, len(a))
	for _, d := range a {
		if !strings.EqualFold(d.Day, day) {
			updated = append(updated, d)
			continue
		}
		slots := make([]TimeSlot, 0, len(d.Slots))
		for i, slot := range d.Slots {
			if i == slotIdx {
				slot.AvailableSeats -= seats
				if slot.AvailableSeats == 0 {
					continue
				}
			}
			slots = append(slots, slot)
		}
		if len(slots) == 0 {
			continue
		}
		updated = append(updated, DayAvailability{Day: d.Day, Slots: slots})
	}
	return updated, nil
}
