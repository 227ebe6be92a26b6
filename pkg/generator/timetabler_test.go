package generator

import (
	"bytes"
	"log"
	"testing"

	"github.com/limaJavier/timetable-generator/pkg/model"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a course whose sections meet on a single day, one hour each, starting at 8:00, 9:00, ...
func dayCourse(courseCode, day string, sections int) model.Course {
	times := []string{"800-900", "900-1000", "1000-1100", "1100-1200", "1200-1300", "1300-1400"}
	course := model.Course{CourseCode: courseCode}
	for i := 0; i < sections; i++ {
		id := courseCode[:1] + "0" + string(rune('1'+i))
		course.Sections = append(course.Sections, newComponent(id, model.Main, day, times[i], "F"))
	}
	return course
}

func TestSelfCollidingCourseIsImpossible(t *testing.T) {
	course := model.Course{
		CourseCode: "CS101",
		Sections:   []model.Component{newComponent("A011", model.Main, "M W", "1000-1100", "F")},
		Labs:       []model.Component{newComponent("L011", model.Lab, "M", "1000-1030", "F")},
	}
	timetabler := NewBoundedTimetabler(DefaultConfig(), nil)

	result := timetabler.Generate(newInput(nil, course), SortDefault)

	assert.True(t, result.Impossible)
	assert.Equal(t, []model.Timetable{{}}, result.Timetables)
	assert.Equal(t, result.Timetables, timetabler.ValidTimetables())
}

func TestIndependentCoursesYieldOneTimetable(t *testing.T) {
	cs101 := model.Course{CourseCode: "CS101", Sections: []model.Component{newComponent("A011", model.Main, "M W", "1000-1100", "F")}}
	ma201 := model.Course{CourseCode: "MA201", Sections: []model.Component{newComponent("B011", model.Main, "T R", "1000-1100", "F")}}

	result := NewBoundedTimetabler(DefaultConfig(), nil).Generate(newInput(nil, cs101, ma201), SortDefault)

	assert.False(t, result.Impossible)
	assert.False(t, result.Truncated)
	assert.False(t, result.Overridden)
	require.Len(t, result.Timetables, 1)
	require.Len(t, result.Timetables[0], 2)
	assert.Equal(t, "CS101", result.Timetables[0][0].CourseCode)
	assert.Equal(t, "MA201", result.Timetables[0][1].CourseCode)
}

func TestFullyBlockedCourseIsOverridden(t *testing.T) {
	course := model.Course{CourseCode: "CS101", Sections: []model.Component{newComponent("A011", model.Main, "M", "1000-1100", "F")}}
	input := newInput(nil, course)
	input.TimeSlots.Block("M", 0, model.SlotsPerDay)
	notifier := &recordingNotifier{}

	result := NewBoundedTimetabler(DefaultConfig(), notifier).Generate(input, SortDefault)

	assert.True(t, result.Overridden)
	assert.False(t, result.Impossible)
	require.Len(t, result.Timetables, 1)
	assert.Equal(t, "A011", result.Timetables[0][0].Main.Id)
	assert.True(t, IsTimetableValid(result.Timetables[0]))

	overridden, ok := notifier.last("overridden")
	assert.True(t, ok)
	assert.True(t, overridden)
	assert.Contains(t, notifier.warnings, overrideWarning)
}

func TestGeneratedTimetablesAreValid(t *testing.T) {
	g := NewWithT(t)
	cs101 := dayCourse("CS101", "M", 3)
	ma201 := dayCourse("MA201", "M", 4) // Shares Monday with CS101, three of the twelve pairs collide
	ph301 := dayCourse("PH301", "T", 2)

	result := NewBoundedTimetabler(DefaultConfig(), nil).Generate(newInput(nil, cs101, ma201, ph301), SortDefault)

	g.Expect(result.Impossible).To(BeFalse())
	g.Expect(result.Truncated).To(BeFalse())
	// CS101 and MA201 can be placed in 3*4-3 = 9 ways, PH301 in 2
	g.Expect(result.Timetables).To(HaveLen(18))
	for _, timetable := range result.Timetables {
		g.Expect(IsTimetableValid(timetable)).To(BeTrue())
		g.Expect(timetable).To(HaveLen(3))
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	input := newInput([]string{"MA201 MAIN M02"}, dayCourse("CS101", "M", 3), dayCourse("MA201", "M", 4), dayCourse("PH301", "T", 2))
	input.TimeSlots.Block("T", 0, 1)

	for _, mode := range SortModes {
		timetabler := NewBoundedTimetabler(DefaultConfig(), nil)
		first := timetabler.Generate(input, mode)
		second := timetabler.Generate(input, mode)

		assert.Equal(t, first, second, mode)
		assert.Equal(t, second.Timetables, timetabler.ValidTimetables(), mode)
	}
}

func TestMonotonicCeiling(t *testing.T) {
	g := NewWithT(t)
	input := newInput(nil, dayCourse("CS101", "M", 3), dayCourse("MA201", "T", 3), dayCourse("PH301", "W", 3)) // 27 combinations, all valid

	previous := 0
	for limit := 1; limit <= 30; limit++ {
		notifier := &recordingNotifier{}
		config := Config{MaxCombinations: limit, CompatibilityPosition: DefaultCompatibilityPosition}

		result := NewBoundedTimetabler(config, notifier).Generate(input, SortDefault)

		g.Expect(len(result.Timetables)).To(BeNumerically(">=", previous))
		g.Expect(len(result.Timetables)).To(BeNumerically("<=", limit))
		g.Expect(result.Truncated).To(Equal(limit < 27))

		// The last notification reflects the outcome of the run
		truncated, ok := notifier.last("truncated")
		g.Expect(ok).To(BeTrue())
		g.Expect(truncated).To(Equal(result.Truncated))
		previous = len(result.Timetables)
	}
}

func TestTruncationIsClearedOnTheNextRun(t *testing.T) {
	notifier := &recordingNotifier{}
	timetabler := NewBoundedTimetabler(Config{MaxCombinations: 5, CompatibilityPosition: DefaultCompatibilityPosition}, notifier)

	broad := newInput(nil, dayCourse("CS101", "M", 3), dayCourse("MA201", "T", 3))
	result := timetabler.Generate(broad, SortDefault)
	assert.True(t, result.Truncated)
	assert.Len(t, result.Timetables, 5)
	assert.Contains(t, notifier.warnings, truncationWarning)

	narrow := newInput([]string{"CS101 MAIN C01"}, dayCourse("CS101", "M", 3), dayCourse("MA201", "T", 3))
	result = timetabler.Generate(narrow, SortDefault)
	assert.False(t, result.Truncated)
	assert.Len(t, result.Timetables, 3)

	truncated, _ := notifier.last("truncated")
	assert.False(t, truncated)
}

func TestPinEnforcement(t *testing.T) {
	course := model.Course{
		CourseCode: "CS101",
		Sections: []model.Component{
			newComponent("A011", model.Main, "M", "1000-1100", "F"),
			newComponent("A022", model.Main, "T", "1000-1100", "F"),
		},
		Labs: []model.Component{
			newComponent("L011", model.Lab, "W", "1000-1100", "F"),
			newComponent("L021", model.Lab, "W", "1300-1400", "F"),
			newComponent("L032", model.Lab, "R", "1000-1100", "F"),
		},
	}
	other := dayCourse("MA201", "F", 2)

	result := NewBoundedTimetabler(DefaultConfig(), nil).Generate(newInput([]string{"CS101 LAB L021"}, course, other), SortDefault)

	require.False(t, result.Impossible)
	assert.Len(t, result.Timetables, 2)
	for _, timetable := range result.Timetables {
		assert.Equal(t, []string{"L021"}, scheduledIds(timetable, "CS101", model.Lab))
		assert.Equal(t, []string{"A011"}, scheduledIds(timetable, "CS101", model.Main))
	}
}

func TestUnsatisfiablePinIsImpossible(t *testing.T) {
	course := model.Course{
		CourseCode: "CS101",
		Sections:   []model.Component{newComponent("A011", model.Main, "M", "1000-1100", "F")},
		Labs:       []model.Component{newComponent("L011", model.Lab, "W", "1000-1100", "F")},
	}

	for _, pin := range []string{"CS101 LAB L099", "CS101 MAIN A099", "CS101 DURATION B"} {
		result := NewBoundedTimetabler(DefaultConfig(), nil).Generate(newInput([]string{pin}, course, dayCourse("MA201", "F", 1)), SortDefault)

		assert.True(t, result.Impossible, pin)
		assert.Equal(t, []model.Timetable{{}}, result.Timetables, pin)
	}
}

func TestGenerateSortsResults(t *testing.T) {
	g := NewWithT(t)
	cs101 := model.Course{CourseCode: "CS101", Sections: []model.Component{newComponent("A01", model.Main, "M", "800-900", "F")}}
	ma201 := model.Course{CourseCode: "MA201", Sections: []model.Component{
		newComponent("X01", model.Main, "M", "1200-1300", "F"),
		newComponent("X02", model.Main, "T", "1200-1300", "F"),
		newComponent("X03", model.Main, "M", "900-1000", "F"),
	}}
	input := newInput(nil, cs101, ma201)

	order := func(mode SortMode) []string {
		result := NewBoundedTimetabler(DefaultConfig(), nil).Generate(input, mode)
		ids := make([]string, 0)
		for _, timetable := range result.Timetables {
			ids = append(ids, scheduledIds(timetable, "MA201", model.Main)...)
		}
		return ids
	}

	g.Expect(order(SortDefault)).To(Equal([]string{"X01", "X02", "X03"}))
	g.Expect(order(SortByWaitingTime)).To(Equal([]string{"X03", "X02", "X01"}))
	g.Expect(order(MinimizeClassDays)).To(Equal([]string{"X01", "X03", "X02"}))
}

func TestGenerateNotifiesThroughTheLogger(t *testing.T) {
	var buffer bytes.Buffer
	notifier := NewLogNotifier(log.New(&buffer, "", 0))
	course := model.Course{CourseCode: "CS101", Sections: []model.Component{newComponent("A011", model.Main, "M", "1000-1100", "F")}}
	input := newInput(nil, course)
	input.TimeSlots.Block("M", 4, 5)

	NewBoundedTimetabler(DefaultConfig(), notifier).Generate(input, SortDefault)

	assert.Contains(t, buffer.String(), "override: blocked time slots relaxed")
	assert.Contains(t, buffer.String(), overrideWarning)
	assert.NotContains(t, buffer.String(), "truncation")
}

func TestNewBoundedTimetablerFallsBackToDefaults(t *testing.T) {
	timetabler := NewBoundedTimetabler(Config{MaxCombinations: 0}, nil).(*boundedTimetabler)

	assert.Equal(t, DefaultConfig(), timetabler.config)
	assert.NotNil(t, timetabler.notifier)
	assert.Empty(t, timetabler.ValidTimetables())
}
