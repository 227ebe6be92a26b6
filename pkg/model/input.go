package model

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawComponent struct {
	Id       string
	Kind     string
	Schedule Schedule
}

type RawCourse struct {
	CourseCode string
	Sections   []RawComponent
	Labs       []RawComponent
	Tutorials  []RawComponent
	Seminars   []RawComponent
}

type RawInput struct {
	Courses   []RawCourse
	Pinned    []string
	TimeSlots map[string][]bool
}

// Input bundles the three externally owned data sources a generation run reads
type Input struct {
	Courses   Catalog
	Pinned    PinSet
	TimeSlots TimeSlotMap
}

func (input Input) Catalog() Catalog {
	return input.Courses
}

func (input Input) Pins() PinSet {
	return input.Pinned
}

func (input Input) BlockedSlots() TimeSlotMap {
	return input.TimeSlots
}

func InputFromJson(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Input{}, fmt.Errorf("cannot parse json input: %w", err)
	}
	return inputFromMap(inputJson)
}

func InputFromYaml(file string) (Input, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Input{}, fmt.Errorf("cannot read input file: %w", err)
	}

	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return Input{}, fmt.Errorf("cannot parse yaml input: %w", err)
	}
	return inputFromMap(inputYaml)
}

func inputFromMap(document map[string]any) (Input, error) {
	var rawInput RawInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true, // Catalogs written by hand mix numeric and string times and dates
		Result:           &rawInput,
	})
	if err != nil {
		return Input{}, err
	}
	if err := decoder.Decode(document); err != nil {
		return Input{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

func ProcessRawInput(rawInput RawInput) (Input, error) {
	input := Input{
		Courses:   make(Catalog, 0, len(rawInput.Courses)),
		TimeSlots: make(TimeSlotMap),
	}

	//** Manage courses
	seenCourses := make(map[string]bool)
	for _, rawCourse := range rawInput.Courses {
		if rawCourse.CourseCode == "" {
			return Input{}, fmt.Errorf("course without code: %v", rawCourse)
		}
		// Make sure course codes are unique, since pins address courses by code
		if seenCourses[rawCourse.CourseCode] {
			return Input{}, fmt.Errorf("duplicate course \"%v\"", rawCourse.CourseCode)
		}
		seenCourses[rawCourse.CourseCode] = true

		course := Course{CourseCode: rawCourse.CourseCode}
		groups := []struct {
			kind   ComponentKind
			raw    []RawComponent
			target *[]Component
		}{
			{Main, rawCourse.Sections, &course.Sections},
			{Lab, rawCourse.Labs, &course.Labs},
			{Tutorial, rawCourse.Tutorials, &course.Tutorials},
			{Seminar, rawCourse.Seminars, &course.Seminars},
		}
		for _, group := range groups {
			components, err := processRawComponents(rawCourse.CourseCode, group.kind, group.raw)
			if err != nil {
				return Input{}, err
			}
			*group.target = components
		}

		input.Courses = append(input.Courses, course)
	}

	//** Manage pins
	pins, err := ParsePinSet(rawInput.Pinned)
	if err != nil {
		return Input{}, err
	}
	input.Pinned = pins

	//** Manage time slots
	for day, slots := range rawInput.TimeSlots {
		if utf8.RuneCountInString(day) != 1 {
			return Input{}, fmt.Errorf("weekday code must be a single character: \"%v\"", day)
		} else if len(slots) > SlotsPerDay {
			return Input{}, fmt.Errorf("weekday \"%v\" has %v slots, at most %v are allowed", day, len(slots), SlotsPerDay)
		}
		input.TimeSlots[day] = make([]bool, SlotsPerDay)
		copy(input.TimeSlots[day], slots)
	}

	return input, nil
}

func processRawComponents(courseCode string, kind ComponentKind, rawComponents []RawComponent) ([]Component, error) {
	components := make([]Component, 0, len(rawComponents))
	for _, rawComponent := range rawComponents {
		if rawComponent.Id == "" {
			return nil, fmt.Errorf("component without id in course \"%v\"", courseCode)
		}

		// A declared kind must agree with the list the component was found in
		if rawComponent.Kind != "" {
			declared, err := ParseComponentKind(rawComponent.Kind)
			if err != nil {
				return nil, fmt.Errorf("component \"%v\" of course \"%v\": %w", rawComponent.Id, courseCode, err)
			} else if declared != kind {
				return nil, fmt.Errorf("component \"%v\" of course \"%v\" is declared as %v but listed as %v", rawComponent.Id, courseCode, declared, kind)
			}
		}

		components = append(components, Component{
			Id:       rawComponent.Id,
			Kind:     kind,
			Schedule: rawComponent.Schedule,
		})
	}
	return components, nil
}

// WithCatalog returns a copy of the input whose courses are replaced by the given catalog
func (input Input) WithCatalog(catalog Catalog) Input {
	input.Courses = catalog
	return input
}

// Size returns the number of courses and components in the input
func (input Input) Size() (courses int, components int) {
	components = lo.SumBy(input.Courses, func(course Course) int {
		return len(course.Sections) + len(course.Labs) + len(course.Tutorials) + len(course.Seminars)
	})
	return len(input.Courses), components
}
