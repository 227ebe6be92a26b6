package model

import "github.com/samber/lo"

// SectionGroup holds main components sharing the same id, i.e. interchangeable offerings of the same section
type SectionGroup struct {
	Id       string
	Sections []Component
}

func (group SectionGroup) Duration() string {
	if len(group.Sections) == 0 {
		return ""
	}
	return group.Sections[0].Schedule.Duration
}

// GroupById splits components into groups sharing the same id, in order of first appearance
func GroupById(components []Component) []SectionGroup {
	grouped := lo.GroupBy(components, func(component Component) string { return component.Id })
	ids := lo.Uniq(lo.Map(components, func(component Component, _ int) string { return component.Id }))

	return lo.Map(ids, func(id string, _ int) SectionGroup {
		return SectionGroup{Id: id, Sections: grouped[id]}
	})
}

// Selection is a secondary slot of a course combination: either a selected component or absent
type Selection struct {
	component Component
	present   bool
}

func Selected(component Component) Selection {
	return Selection{component: component, present: true}
}

func Absent() Selection {
	return Selection{}
}

func (selection Selection) Get() (Component, bool) {
	return selection.component, selection.present
}

func (selection Selection) Present() bool {
	return selection.present
}

// CourseCombination is one candidate selection for a single course
type CourseCombination struct {
	CourseCode string
	Main       SectionGroup
	Lab        Selection
	Tutorial   Selection
	Seminar    Selection
}

// Components returns the main components followed by the selected secondary ones
func (combination CourseCombination) Components() []Component {
	components := make([]Component, 0, len(combination.Main.Sections)+3)
	components = append(components, combination.Main.Sections...)
	for _, selection := range []Selection{combination.Lab, combination.Tutorial, combination.Seminar} {
		if component, ok := selection.Get(); ok {
			components = append(components, component)
		}
	}
	return components
}

// Timetable holds one combination per course, in catalog order
type Timetable []CourseCombination

func (timetable Timetable) Components() []Component {
	return lo.FlatMap(timetable, func(combination CourseCombination, _ int) []Component {
		return combination.Components()
	})
}
