package generator

import "github.com/limaJavier/timetable-generator/pkg/model"

// singleSectionSentinel is the main id that never benefits from the single-section exemption
const singleSectionSentinel = "0"

type CompatibilityRule interface {
	// Checks whether the secondary component may be registered together with the main group, where
	// singleSection is true if the course offers exactly one main section after filtering.
	// Duration agreement is checked separately
	Compatible(main model.SectionGroup, secondary model.Component, singleSection bool) bool
}

// positionalRule follows the catalog convention where one character of the id tags the section a secondary component belongs to.
// Single-section courses often omit the tag, so any secondary component is compatible with their (non-sentinel) section
type positionalRule struct {
	position int
}

func NewPositionalRule(position int) CompatibilityRule {
	return &positionalRule{position: position}
}

func (rule *positionalRule) Compatible(main model.SectionGroup, secondary model.Component, singleSection bool) bool {
	if singleSection && main.Id != singleSectionSentinel {
		return true
	}
	return charAt(secondary.Id, rule.position) == charAt(main.Id, rule.position)
}

// Returns the byte at index as a string, or the empty string when out of range
func charAt(id string, index int) string {
	if index < 0 || index >= len(id) {
		return ""
	}
	return id[index : index+1]
}

// eligibleSecondaries returns the components of one secondary kind that may accompany the main group
func eligibleSecondaries(rule CompatibilityRule, main model.SectionGroup, candidates []model.Component, singleSection bool) []model.Component {
	eligible := make([]model.Component, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Schedule.Duration == main.Duration() && rule.Compatible(main, candidate, singleSection) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible
}
