package generator

import (
	"github.com/limaJavier/timetable-generator/pkg/model"
	"github.com/samber/lo"
)

type courseOutcome struct {
	combinations []model.CourseCombination
	overridden   bool
	truncated    bool
}

// candidates applies the duration, blocked-slot and pin filters, in that order, to the components of one kind
func candidates(course model.Course, kind model.ComponentKind, pins model.PinSet, timeSlots model.TimeSlotMap) (components []model.Component, overridden bool) {
	components = course.Components(kind)
	if track, ok := pins.Track(course.CourseCode); ok {
		components = filterByDuration(components, track)
	}
	components, overridden = filterAgainstTimeSlots(components, timeSlots)
	return filterPinned(components, pins.Components(course.CourseCode, kind)), overridden
}

// courseCombinations resolves every main group of the course into its combinations with compatible secondary components
func (timetabler *boundedTimetabler) courseCombinations(course model.Course, pins model.PinSet, timeSlots model.TimeSlotMap) courseOutcome {
	outcome := courseOutcome{combinations: make([]model.CourseCombination, 0)}

	//** Filter components
	mains, overridden := candidates(course, model.Main, pins, timeSlots)
	outcome.overridden = overridden

	secondaries := make(map[model.ComponentKind][]model.Component, len(model.SecondaryKinds))
	for _, kind := range model.SecondaryKinds {
		components, overridden := candidates(course, kind, pins, timeSlots)
		secondaries[kind] = components
		outcome.overridden = outcome.overridden || overridden
	}

	singleSection := len(mains) == 1

	//** Resolve main groups
	for _, group := range model.GroupById(mains) {
		options := make([][]model.Selection, 0, len(model.SecondaryKinds))
		rejected := false

		for _, kind := range model.SecondaryKinds {
			eligible := eligibleSecondaries(timetabler.rule, group, secondaries[kind], singleSection)

			// Pins are hard constraints: the group is rejected if no eligible component satisfies the pin
			if len(pins.Components(course.CourseCode, kind)) > 0 &&
				!lo.SomeBy(eligible, func(component model.Component) bool { return component.Pinned }) {
				rejected = true
				break
			}

			if len(eligible) == 0 {
				options = append(options, []model.Selection{model.Absent()})
			} else {
				options = append(options, lo.Map(eligible, func(component model.Component, _ int) model.Selection {
					return model.Selected(component)
				}))
			}
		}

		if rejected {
			continue
		}

		//** Expand secondary selections
		product, truncated := cartesianProduct(options, timetabler.config.MaxCombinations)
		outcome.truncated = outcome.truncated || truncated

		for _, selections := range product {
			// A truncated product may hold partial combinations; the kinds they miss are absent
			for len(selections) < len(model.SecondaryKinds) {
				selections = append(selections, model.Absent())
			}
			combination := model.CourseCombination{
				CourseCode: course.CourseCode,
				Main:       group,
				Lab:        selections[0],
				Tutorial:   selections[1],
				Seminar:    selections[2],
			}
			// A combination colliding with itself cannot be part of any valid timetable
			if !IsTimetableValid(model.Timetable{combination}) {
				continue
			}
			outcome.combinations = append(outcome.combinations, combination)
		}
	}

	return outcome
}
