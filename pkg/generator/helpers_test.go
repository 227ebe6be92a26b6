package generator

import (
	"github.com/limaJavier/timetable-generator/pkg/model"
)

const (
	termStart int64 = 20240903
	termEnd   int64 = 20241206
)

func newComponent(id string, kind model.ComponentKind, days, time, duration string) model.Component {
	return model.Component{
		Id:   id,
		Kind: kind,
		Schedule: model.Schedule{
			Days:      days,
			Time:      time,
			Duration:  duration,
			StartDate: termStart,
			EndDate:   termEnd,
		},
	}
}

func withDates(component model.Component, start, end int64) model.Component {
	component.Schedule.StartDate = start
	component.Schedule.EndDate = end
	return component
}

func newInput(pins []string, courses ...model.Course) model.Input {
	pinSet, err := model.ParsePinSet(pins)
	if err != nil {
		panic(err)
	}
	return model.Input{
		Courses:   courses,
		Pinned:    pinSet,
		TimeSlots: model.TimeSlotMap{},
	}
}

// Returns the ids of the components a timetable schedules for the course and kind
func scheduledIds(timetable model.Timetable, courseCode string, kind model.ComponentKind) []string {
	ids := make([]string, 0)
	for _, combination := range timetable {
		if combination.CourseCode != courseCode {
			continue
		}
		for _, component := range combination.Components() {
			if component.Kind == kind {
				ids = append(ids, component.Id)
			}
		}
	}
	return ids
}

type notification struct {
	event string
	value bool
}

type recordingNotifier struct {
	notifications []notification
	warnings      []string
}

func (notifier *recordingNotifier) Truncated(truncated bool) {
	notifier.notifications = append(notifier.notifications, notification{"truncated", truncated})
}

func (notifier *recordingNotifier) Overridden(overridden bool) {
	notifier.notifications = append(notifier.notifications, notification{"overridden", overridden})
}

func (notifier *recordingNotifier) Warn(message string) {
	notifier.warnings = append(notifier.warnings, message)
}

// Returns the last value notified for the event
func (notifier *recordingNotifier) last(event string) (bool, bool) {
	for i := len(notifier.notifications) - 1; i >= 0; i-- {
		if notifier.notifications[i].event == event {
			return notifier.notifications[i].value, true
		}
	}
	return false, false
}
