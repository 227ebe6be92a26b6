package generator

import (
	"cmp"
	"slices"

	"github.com/limaJavier/timetable-generator/pkg/model"
	"github.com/samber/lo"
)

type SortMode string

const (
	SortDefault       SortMode = ""
	SortByWaitingTime SortMode = "sortByWaitingTime"
	MinimizeClassDays SortMode = "minimizeClassDays"
)

var SortModes = []SortMode{SortDefault, SortByWaitingTime, MinimizeClassDays}

type slotRange struct {
	start, end int
}

// Groups the slot ranges of every timed component by weekday
func daySlots(timetable model.Timetable) map[string][]slotRange {
	slots := make(map[string][]slotRange)
	for _, component := range timetable.Components() {
		start, end, ok := component.Schedule.SlotRange()
		if !ok {
			continue
		}
		for _, day := range component.Schedule.Weekdays() {
			slots[day] = append(slots[day], slotRange{start, end})
		}
	}
	return slots
}

// WaitingTime returns the idle minutes between classes, summed over every weekday
func WaitingTime(timetable model.Timetable) int {
	waitingTime := 0
	for _, ranges := range daySlots(timetable) {
		slices.SortFunc(ranges, func(a, b slotRange) int { return cmp.Compare(a.start, b.start) })

		latestEnd := ranges[0].end
		for _, current := range ranges[1:] {
			if gap := current.start - latestEnd; gap > 0 {
				waitingTime += gap * model.SlotMinutes
			}
			latestEnd = max(latestEnd, current.end)
		}
	}
	return waitingTime
}

// ClassDays returns the number of distinct weekdays with at least one timed component
func ClassDays(timetable model.Timetable) int {
	return len(daySlots(timetable))
}

// sortTimetables orders the timetables in place according to mode; ties keep generation order
func sortTimetables(timetables []model.Timetable, mode SortMode) {
	type scored struct {
		timetable   model.Timetable
		waitingTime int
		classDays   int
	}

	var compare func(a, b scored) int
	switch mode {
	case SortByWaitingTime:
		compare = func(a, b scored) int {
			if diff := cmp.Compare(a.waitingTime, b.waitingTime); diff != 0 {
				return diff
			}
			return cmp.Compare(a.classDays, b.classDays)
		}
	case MinimizeClassDays:
		compare = func(a, b scored) int { return cmp.Compare(a.classDays, b.classDays) }
	default:
		return
	}

	// Scores are computed once per timetable instead of once per comparison
	scoredTimetables := lo.Map(timetables, func(timetable model.Timetable, _ int) scored {
		return scored{timetable, WaitingTime(timetable), ClassDays(timetable)}
	})
	slices.SortStableFunc(scoredTimetables, compare)

	for i, scoredTimetable := range scoredTimetables {
		timetables[i] = scoredTimetable.timetable
	}
}
