package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	DayStartHour = 8
	DayEndHour   = 22
	SlotMinutes  = 30
	SlotsPerDay  = (DayEndHour - DayStartHour) * 60 / SlotMinutes
)

// TimeToSlot maps a clock time ("930", "0930", "9:30", "14:00") to its slot index within the 8:00-22:00 day.
// Minutes other than 30 count as the start of the hour. Times outside the day are not rejected
func TimeToSlot(text string) (int, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(text), ":", "")

	var hoursStr, minutesStr string
	switch len(digits) {
	case 3: // HMM
		hoursStr, minutesStr = digits[:1], digits[1:]
	case 4: // HHMM
		hoursStr, minutesStr = digits[:2], digits[2:]
	default:
		return 0, fmt.Errorf("invalid clock time \"%v\"", text)
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time \"%v\": %w", text, err)
	}
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time \"%v\": %w", text, err)
	}

	slot := (hours - DayStartHour) * 2
	if minutes == 30 {
		slot++
	}
	return slot, nil
}

// SlotRange returns the half-open slot interval [start, end) the schedule occupies on each of its days.
// ok is false for exempt (online or asynchronous) schedules, which are never slot-checked
func (schedule Schedule) SlotRange() (start, end int, ok bool) {
	if schedule.Time == "" || strings.IndexFunc(schedule.Time, unicode.IsLetter) >= 0 {
		return 0, 0, false
	}

	bounds := strings.Split(schedule.Time, "-")
	if len(bounds) != 2 {
		return 0, 0, false
	}

	start, err := TimeToSlot(bounds[0])
	if err != nil {
		return 0, 0, false
	}
	end, err = TimeToSlot(bounds[1])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// Weekdays returns the weekday codes of the schedule, one per non-space character
func (schedule Schedule) Weekdays() []string {
	days := make([]string, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		if unicode.IsSpace(day) {
			continue
		}
		days = append(days, string(day))
	}
	return days
}

// Exempt reports whether the schedule is never slot-checked
func (schedule Schedule) Exempt() bool {
	_, _, ok := schedule.SlotRange()
	return !ok
}

// TimeSlotMap marks blocked slots per weekday code. Missing days and out-of-range slots read as unblocked
type TimeSlotMap map[string][]bool

func (timeSlots TimeSlotMap) Blocked(day string, slot int) bool {
	slots, ok := timeSlots[day]
	if !ok || slot < 0 || slot >= len(slots) {
		return false
	}
	return slots[slot]
}

// Block marks the slots in [start, end) of the given day as blocked
func (timeSlots TimeSlotMap) Block(day string, start, end int) {
	if _, ok := timeSlots[day]; !ok {
		timeSlots[day] = make([]bool, SlotsPerDay)
	}
	for slot := max(start, 0); slot < end && slot < len(timeSlots[day]); slot++ {
		timeSlots[day][slot] = true
	}
}
