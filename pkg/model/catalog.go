package model

import (
	"fmt"
	"strings"
)

type ComponentKind string

const (
	Main     ComponentKind = "MAIN"
	Lab      ComponentKind = "LAB"
	Tutorial ComponentKind = "TUT"
	Seminar  ComponentKind = "SEM"
)

// SecondaryKinds lists the kinds that may accompany a main section, in the order they are combined
var SecondaryKinds = []ComponentKind{Lab, Tutorial, Seminar}

// ParseComponentKind accepts the catalog spellings of a kind (case-insensitive), including the long forms "TUTORIAL" and "SEMINAR"
func ParseComponentKind(value string) (ComponentKind, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "MAIN", "LEC", "LECTURE":
		return Main, nil
	case "LAB":
		return Lab, nil
	case "TUT", "TUTORIAL":
		return Tutorial, nil
	case "SEM", "SEMINAR":
		return Seminar, nil
	}
	return "", fmt.Errorf("unknown component kind \"%v\"", value)
}

type Schedule struct {
	Days      string // Weekday codes, e.g. "M W" or "MW" (M, T, W, R, F, S, U)
	Time      string // "start-end" in clock time, e.g. "1000-1130"; empty or non-numeric for online components
	Duration  string // Term track code, e.g. "F" (full-term), "A" or "B" (half-terms)
	StartDate int64
	EndDate   int64
}

type Component struct {
	Id       string
	Kind     ComponentKind
	Schedule Schedule
	Pinned   bool // Set only on the copies returned by pin filtering
}

type Course struct {
	CourseCode string
	Sections   []Component
	Labs       []Component
	Tutorials  []Component
	Seminars   []Component
}

// Components returns the components of the given kind
func (course Course) Components(kind ComponentKind) []Component {
	switch kind {
	case Main:
		return course.Sections
	case Lab:
		return course.Labs
	case Tutorial:
		return course.Tutorials
	case Seminar:
		return course.Seminars
	}
	return nil
}

// Catalog is ordered; its order is the traversal order of generation
type Catalog []Course

// Lookup returns the course with the given code
func (catalog Catalog) Lookup(courseCode string) (Course, bool) {
	for _, course := range catalog {
		if course.CourseCode == courseCode {
			return course, true
		}
	}
	return Course{}, false
}
