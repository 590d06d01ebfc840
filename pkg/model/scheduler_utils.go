package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

func verify(scenarios []Scenario, modelInput ModelInput, collation Collation, requireAllCourses bool) bool {
	//** Filter sections
	courses := FilterEligibleCourses(modelInput.Surname, modelInput.Department, modelInput.Courses, collation)
	if requireAllCourses && len(courses) < len(modelInput.Courses) {
		return len(scenarios) == 0
	}

	seen := make(map[string]bool)
	for _, scenario := range scenarios {
		// Check that:
		// - Scenario holds exactly one entry per eligible course, in the courses' order
		// - Scenario is not repeated
		// - Every section exists and passed the eligibility filter (toggled and matching a criterion)
		// - No section overlaps a blocked window
		// - No section of a course that checks collisions overlaps a section placed before it
		if len(scenario) != len(courses) {
			return false
		}

		key := scenarioKey(scenario)
		if seen[key] {
			return false
		}
		seen[key] = true

		chosen := make([]Section, 0, len(scenario))
		for i, entry := range scenario {
			course := courses[i]
			if entry.Code != course.Code {
				return false
			}

			section, ok := lo.Find(course.Sections, func(section Section) bool {
				return section.Number == entry.Section
			})
			if !ok || CollidesWithDontFills(section.Times, modelInput.DontFills) {
				return false
			}

			if course.CheckCollision && lo.SomeBy(chosen, func(placed Section) bool {
				return SectionsCollide(section.Times, placed.Times)
			}) {
				return false
			}

			chosen = append(chosen, section)
		}
	}

	return true
}

func scenarioKey(scenario Scenario) string {
	return strings.Join(lo.Map(scenario, func(entry ScenarioEntry, _ int) string {
		return fmt.Sprintf("%d/%s", entry.Code, entry.Section)
	}), ",")
}
