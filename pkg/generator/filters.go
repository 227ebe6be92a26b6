package generator

import (
	"slices"

	"github.com/limaJavier/timetable-generator/pkg/model"
	"github.com/samber/lo"
)

func filterByDuration(components []model.Component, track string) []model.Component {
	return lo.Filter(components, func(component model.Component, _ int) bool {
		return component.Schedule.Duration == track
	})
}

// filterAgainstTimeSlots drops the groups of interchangeable components that touch a blocked slot.
// When every group is blocked, the least blocked one survives and overridden is true
func filterAgainstTimeSlots(components []model.Component, timeSlots model.TimeSlotMap) (available []model.Component, overridden bool) {
	type blockedGroup struct {
		group      model.SectionGroup
		percentage float64
	}

	available = make([]model.Component, 0, len(components))
	blockedGroups := make([]blockedGroup, 0)

	for _, group := range model.GroupById(components) {
		if !groupBlocked(group, timeSlots) {
			available = append(available, group.Sections...)
			continue
		}
		blockedGroups = append(blockedGroups, blockedGroup{group, blockedPercentage(group, timeSlots)})
	}

	if len(available) == 0 && len(blockedGroups) > 0 {
		// Stable sort keeps catalog order among equally blocked groups
		slices.SortStableFunc(blockedGroups, func(a, b blockedGroup) int {
			if a.percentage < b.percentage {
				return -1
			} else if a.percentage > b.percentage {
				return 1
			}
			return 0
		})
		return append(available, blockedGroups[0].group.Sections...), true
	}

	return available, false
}

// Checks whether any timed component of the group occupies a blocked slot
func groupBlocked(group model.SectionGroup, timeSlots model.TimeSlotMap) bool {
	return lo.SomeBy(group.Sections, func(component model.Component) bool {
		start, end, ok := component.Schedule.SlotRange()
		if !ok {
			return false
		}
		return lo.SomeBy(component.Schedule.Weekdays(), func(day string) bool {
			for slot := start; slot < end; slot++ {
				if timeSlots.Blocked(day, slot) {
					return true
				}
			}
			return false
		})
	})
}

// Returns the percentage of the group's slot-weekday pairs that are blocked
func blockedPercentage(group model.SectionGroup, timeSlots model.TimeSlotMap) float64 {
	total, blocked := 0, 0
	for _, component := range group.Sections {
		start, end, ok := component.Schedule.SlotRange()
		if !ok {
			continue
		}
		for _, day := range component.Schedule.Weekdays() {
			for slot := start; slot < end; slot++ {
				total++
				if timeSlots.Blocked(day, slot) {
					blocked++
				}
			}
		}
	}

	if total == 0 {
		return 0
	}
	return float64(blocked) / float64(total) * 100
}

// filterPinned keeps only the components named by the pins and marks them as pinned.
// Without pins the components are returned unchanged
func filterPinned(components []model.Component, pins []model.ComponentPin) []model.Component {
	if len(pins) == 0 {
		return components
	}

	return lo.FilterMap(components, func(component model.Component, _ int) (model.Component, bool) {
		if !lo.SomeBy(pins, func(pin model.ComponentPin) bool { return pin.ComponentId == component.Id }) {
			return model.Component{}, false
		}
		component.Pinned = true // component is a copy, the catalog is left untouched
		return component, true
	})
}
