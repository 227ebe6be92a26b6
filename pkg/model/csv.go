package model

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// CatalogRow is one component of a CSV catalog export
type CatalogRow struct {
	CourseCode string `csv:"course_code"`
	Kind       string `csv:"kind"`
	Id         string `csv:"id"`
	Days       string `csv:"days"`
	Time       string `csv:"time"`
	Duration   string `csv:"duration"`
	StartDate  int64  `csv:"start_date"`
	EndDate    int64  `csv:"end_date"`
}

// CatalogFromCsv reads a catalog with one component per row. Courses keep the order in which they first appear
func CatalogFromCsv(in io.Reader) (Catalog, error) {
	rows := []*CatalogRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("cannot parse csv catalog: %w", err)
	}

	catalog := make(Catalog, 0)
	positions := make(map[string]int)
	for line, row := range rows {
		if row.CourseCode == "" || row.Id == "" {
			return nil, fmt.Errorf("csv catalog row %v: course_code and id are required", line+2) // +2 accounts for the header and 1-based lines
		}

		kind, err := ParseComponentKind(row.Kind)
		if err != nil {
			return nil, fmt.Errorf("csv catalog row %v: %w", line+2, err)
		}

		position, ok := positions[row.CourseCode]
		if !ok {
			position = len(catalog)
			positions[row.CourseCode] = position
			catalog = append(catalog, Course{CourseCode: row.CourseCode})
		}

		component := Component{
			Id:   row.Id,
			Kind: kind,
			Schedule: Schedule{
				Days:      row.Days,
				Time:      row.Time,
				Duration:  row.Duration,
				StartDate: row.StartDate,
				EndDate:   row.EndDate,
			},
		}

		course := &catalog[position]
		switch kind {
		case Main:
			course.Sections = append(course.Sections, component)
		case Lab:
			course.Labs = append(course.Labs, component)
		case Tutorial:
			course.Tutorials = append(course.Tutorials, component)
		case Seminar:
			course.Seminars = append(course.Seminars, component)
		}
	}

	return catalog, nil
}

// TimetableRow is one scheduled component of a generated timetable
type TimetableRow struct {
	Timetable  int    `csv:"timetable"`
	CourseCode string `csv:"course_code"`
	Kind       string `csv:"kind"`
	Id         string `csv:"id"`
	Days       string `csv:"days"`
	Time       string `csv:"time"`
	Duration   string `csv:"duration"`
	StartDate  int64  `csv:"start_date"`
	EndDate    int64  `csv:"end_date"`
}

// TimetablesToCsv writes one row per component of every timetable
func TimetablesToCsv(timetables []Timetable, out io.Writer) error {
	rows := make([]*TimetableRow, 0)
	for index, timetable := range timetables {
		for _, combination := range timetable {
			for _, component := range combination.Components() {
				rows = append(rows, &TimetableRow{
					Timetable:  index,
					CourseCode: combination.CourseCode,
					Kind:       string(component.Kind),
					Id:         component.Id,
					Days:       component.Schedule.Days,
					Time:       component.Schedule.Time,
					Duration:   component.Schedule.Duration,
					StartDate:  component.Schedule.StartDate,
					EndDate:    component.Schedule.EndDate,
				})
			}
		}
	}

	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("cannot write csv timetables: %w", err)
	}
	return nil
}
