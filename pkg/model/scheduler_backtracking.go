package model

import (
	log "github.com/sirupsen/logrus"
)

type backtrackingScheduler struct {
	collation         Collation
	maxScenarios      int
	requireAllCourses bool
}

// NewBacktrackingScheduler returns a scheduler that explores every section choice course by course.
// A positive maxScenarios stops the search once that many scenarios were found. When requireAllCourses is set, a
// course left without eligible sections yields no scenarios instead of being dropped
func NewBacktrackingScheduler(collation Collation, maxScenarios int, requireAllCourses bool) Scheduler {
	if collation == nil {
		collation = ByteOrder
	}
	return &backtrackingScheduler{
		collation:         collation,
		maxScenarios:      max(maxScenarios, 0),
		requireAllCourses: requireAllCourses,
	}
}

func (scheduler *backtrackingScheduler) Build(modelInput ModelInput) ([]Scenario, error) {
	//** Filter sections
	courses := FilterEligibleCourses(modelInput.Surname, modelInput.Department, modelInput.Courses, scheduler.collation)

	logger := log.WithFields(log.Fields{
		"courses":   len(modelInput.Courses),
		"eligible":  len(courses),
		"dontFills": len(modelInput.DontFills),
		"collation": scheduler.collation.Name(),
	})

	if scheduler.requireAllCourses && len(courses) < len(modelInput.Courses) {
		logger.Debug("a course has no eligible sections")
		return []Scenario{}, nil
	}

	//** Search
	scenarios := Search(courses, modelInput.DontFills, scheduler.maxScenarios)

	if scheduler.maxScenarios > 0 && len(scenarios) == scheduler.maxScenarios {
		logger.WithField("limit", scheduler.maxScenarios).Warn("search stopped at the scenario limit")
	}
	logger.WithField("scenarios", len(scenarios)).Debug("search finished")

	return scenarios, nil
}

func (scheduler *backtrackingScheduler) Verify(scenarios []Scenario, modelInput ModelInput) bool {
	return verify(scenarios, modelInput, scheduler.collation, scheduler.requireAllCourses)
}

// Search enumerates the scenarios of already filtered courses, in the order given by the courses and their sections.
// A section is rejected when it overlaps a blocked window, or when its course checks collisions and it overlaps a
// section placed before it
func Search(courses []Course, dontFills []DontFill, maxScenarios int) []Scenario {
	generator := newScenarioGenerator(courses, maxScenarios)

	constraints := []placementConstraint{
		func(assignment []int, depth int) bool {
			return !CollidesWithDontFills(courses[depth].Sections[assignment[depth]].Times, dontFills)
		},
		func(assignment []int, depth int) bool {
			if !courses[depth].CheckCollision {
				return true
			}
			candidate := courses[depth].Sections[assignment[depth]].Times
			for placed := range depth {
				if SectionsCollide(candidate, courses[placed].Sections[assignment[placed]].Times) {
					return false
				}
			}
			return true
		},
	}

	return generator.ConstrainedScenarios(constraints)
}
