package generator

import "github.com/limaJavier/timetable-generator/pkg/model"

type dateRange struct {
	start, end int64
}

// Checks whether two half-open date ranges share at least one date
func (a dateRange) overlaps(b dateRange) bool {
	return a.start < b.end && b.start < a.end
}

// IsTimetableValid checks that no two timed components of the timetable share a weekday slot during overlapping date ranges.
// Components meeting at the same weekday slot in disjoint date ranges (e.g. split terms) do not collide
func IsTimetableValid(timetable model.Timetable) bool {
	// occupied[day][dateRange][slot] = true if and only if a component active in dateRange meets at slot on day
	occupied := make(map[string]map[dateRange]map[int]bool)

	for _, component := range timetable.Components() {
		start, end, ok := component.Schedule.SlotRange()
		if !ok {
			continue
		}
		dates := dateRange{component.Schedule.StartDate, component.Schedule.EndDate}

		for _, day := range component.Schedule.Weekdays() {
			if _, ok := occupied[day]; !ok {
				occupied[day] = make(map[dateRange]map[int]bool)
			}

			for slot := start; slot < end; slot++ {
				for existing, slots := range occupied[day] {
					if dates.overlaps(existing) && slots[slot] {
						return false
					}
				}

				if _, ok := occupied[day][dates]; !ok {
					occupied[day][dates] = make(map[int]bool)
				}
				occupied[day][dates][slot] = true // Store occupancy
			}
		}
	}

	return true
}
