package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const durationDirective = "DURATION"

// Pin is a hard user constraint on a course: either a ComponentPin or a DurationPin
type Pin interface {
	Course() string
	// Returns the directive in the format used by the pin store
	String() string
}

// ComponentPin locks one exact component of a course
type ComponentPin struct {
	CourseCode  string
	Kind        ComponentKind
	ComponentId string
}

func (pin ComponentPin) Course() string { return pin.CourseCode }

func (pin ComponentPin) String() string {
	return fmt.Sprintf("%v %v %v", pin.CourseCode, pin.Kind, pin.ComponentId)
}

// DurationPin restricts a course to one duration track
type DurationPin struct {
	CourseCode string
	Track      string
}

func (pin DurationPin) Course() string { return pin.CourseCode }

func (pin DurationPin) String() string {
	return fmt.Sprintf("%v %v %v", pin.CourseCode, durationDirective, pin.Track)
}

type PinError struct {
	Directive string
	Reason    string
}

func (err PinError) Error() string {
	return fmt.Sprintf("malformed pin directive \"%v\": %v", err.Directive, err.Reason)
}

// ParsePin parses "<courseCode> <kind> <componentId>" or "<courseCode> DURATION <trackCode>"
func ParsePin(directive string) (Pin, error) {
	fields := strings.Fields(directive)
	if len(fields) != 3 {
		return nil, PinError{Directive: directive, Reason: fmt.Sprintf("expected 3 fields, found %v", len(fields))}
	}

	courseCode, kindStr, value := fields[0], fields[1], fields[2]
	if strings.EqualFold(kindStr, durationDirective) {
		return DurationPin{CourseCode: courseCode, Track: value}, nil
	}

	kind, err := ParseComponentKind(kindStr)
	if err != nil {
		return nil, PinError{Directive: directive, Reason: err.Error()}
	}
	return ComponentPin{CourseCode: courseCode, Kind: kind, ComponentId: value}, nil
}

// PinSet holds the pins of a run, preserving the order in which they were recorded
type PinSet struct {
	components []ComponentPin
	durations  []DurationPin
}

func NewPinSet(pins ...Pin) PinSet {
	set := PinSet{}
	for _, pin := range pins {
		switch pin := pin.(type) {
		case ComponentPin:
			set.components = append(set.components, pin)
		case DurationPin:
			set.durations = append(set.durations, pin)
		}
	}
	return set
}

// ParsePinSet parses every directive, failing on the first malformed one
func ParsePinSet(directives []string) (PinSet, error) {
	pins := make([]Pin, 0, len(directives))
	for _, directive := range directives {
		pin, err := ParsePin(directive)
		if err != nil {
			return PinSet{}, err
		}
		pins = append(pins, pin)
	}
	return NewPinSet(pins...), nil
}

// Track returns the first duration track pinned for the course
func (set PinSet) Track(courseCode string) (string, bool) {
	pin, ok := lo.Find(set.durations, func(pin DurationPin) bool { return pin.CourseCode == courseCode })
	return pin.Track, ok
}

// Components returns the component pins recorded for the course and kind
func (set PinSet) Components(courseCode string, kind ComponentKind) []ComponentPin {
	return lo.Filter(set.components, func(pin ComponentPin, _ int) bool {
		return pin.CourseCode == courseCode && pin.Kind == kind
	})
}

func (set PinSet) Len() int {
	return len(set.components) + len(set.durations)
}

// Directives returns every pin in the pin store format
func (set PinSet) Directives() []string {
	directives := lo.Map(set.components, func(pin ComponentPin, _ int) string { return pin.String() })
	return append(directives, lo.Map(set.durations, func(pin DurationPin, _ int) string { return pin.String() })...)
}
