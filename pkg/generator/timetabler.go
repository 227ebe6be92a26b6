package generator

import (
	"github.com/limaJavier/timetable-generator/pkg/model"
	"github.com/samber/lo"
)

// Store supplies the externally owned data a generation run reads once
type Store interface {
	Catalog() model.Catalog
	Pins() model.PinSet
	BlockedSlots() model.TimeSlotMap
}

// Result is the outcome of one generation run
type Result struct {
	Timetables []model.Timetable
	Impossible bool // Some course has no admissible combination; Timetables holds a single empty timetable
	Truncated  bool // Expansion stopped at the combination ceiling; Timetables is valid but incomplete
	Overridden bool // Blocked slots were relaxed for at least one course component
}

type Timetabler interface {
	// Generates every valid timetable for the store's catalog and constraints, sorted according to mode
	Generate(store Store, mode SortMode) Result

	// Returns the timetables of the last run without recomputing them
	ValidTimetables() []model.Timetable
}

type boundedTimetabler struct {
	config   Config
	rule     CompatibilityRule
	notifier Notifier
	last     Result
}

// NewBoundedTimetabler builds a timetabler whose expansion is bounded by config.MaxCombinations.
// An invalid config falls back to the defaults; a nil notifier discards events
func NewBoundedTimetabler(config Config, notifier Notifier) Timetabler {
	if config.Validate() != nil {
		config = DefaultConfig()
	}
	if notifier == nil {
		notifier = NopNotifier()
	}

	return &boundedTimetabler{
		config:   config,
		rule:     NewPositionalRule(config.CompatibilityPosition),
		notifier: notifier,
		last:     Result{Timetables: []model.Timetable{}},
	}
}

func (timetabler *boundedTimetabler) Generate(store Store, mode SortMode) Result {
	//** Reset run-level state
	result := Result{Timetables: make([]model.Timetable, 0)}
	timetabler.notifier.Truncated(false)
	timetabler.notifier.Overridden(false)

	catalog, pins, timeSlots := store.Catalog(), store.Pins(), store.BlockedSlots()

	//** Resolve per-course combinations
	allCombinations := make([][]model.CourseCombination, 0, len(catalog))
	for _, course := range catalog {
		outcome := timetabler.courseCombinations(course, pins, timeSlots)
		if outcome.truncated && !result.Truncated {
			timetabler.raiseTruncation()
		}
		result.Truncated = result.Truncated || outcome.truncated
		result.Overridden = result.Overridden || outcome.overridden
		allCombinations = append(allCombinations, outcome.combinations)
	}

	// A course without combinations makes every timetable impossible; no partial results are produced
	if lo.SomeBy(allCombinations, func(combinations []model.CourseCombination) bool { return len(combinations) == 0 }) {
		result.Timetables = []model.Timetable{{}}
		result.Impossible = true
		timetabler.finish(result)
		return result
	}

	//** Expand across courses
	candidates, truncated := combineIteratively(allCombinations, timetabler.config.MaxCombinations)
	if truncated && !result.Truncated {
		timetabler.raiseTruncation()
	}
	result.Truncated = result.Truncated || truncated

	//** Validate
	for _, candidate := range candidates {
		timetable := model.Timetable(candidate)
		if IsTimetableValid(timetable) {
			result.Timetables = append(result.Timetables, timetable)
		}
	}

	//** Rank
	sortTimetables(result.Timetables, mode)

	timetabler.finish(result)
	return result
}

func (timetabler *boundedTimetabler) ValidTimetables() []model.Timetable {
	return timetabler.last.Timetables
}

func (timetabler *boundedTimetabler) raiseTruncation() {
	timetabler.notifier.Truncated(true)
	timetabler.notifier.Warn(truncationWarning)
}

// finish publishes the result and reports the override, if any
func (timetabler *boundedTimetabler) finish(result Result) {
	timetabler.last = result
	if result.Overridden {
		timetabler.notifier.Overridden(true)
		timetabler.notifier.Warn(overrideWarning)
	}
}
