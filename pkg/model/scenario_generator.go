package model

// Unplaced marks a course whose section has not been chosen yet
const Unplaced = -1

// A constraint receives the assignment built so far and the depth of the course being placed; assignment[depth] holds
// the index of the candidate section, positions after depth hold Unplaced
type placementConstraint func(assignment []int, depth int) bool

type scenarioGenerator interface {
	// Example:
	//
	//	generator := newScenarioGenerator(courses, 0)
	//
	//	scenarios := generator.ConstrainedScenarios([]placementConstraint{
	//				func(assignment []int, depth int) bool {
	//					// Only the first section of every course
	//					return assignment[depth] == 0
	//				},
	//			})
	ConstrainedScenarios(constraints []placementConstraint) []Scenario
}

// A limit of zero generates every scenario
func newScenarioGenerator(courses []Course, limit int) scenarioGenerator {
	return &scenarioGeneratorImplementation{
		courses: courses,
		limit:   limit,
	}
}

type scenarioGeneratorImplementation struct {
	courses []Course
	limit   int
}

func (generator *scenarioGeneratorImplementation) ConstrainedScenarios(constraints []placementConstraint) []Scenario {
	scenarios := make([]Scenario, 0)
	if len(generator.courses) == 0 {
		return scenarios
	}

	assignment := make([]int, len(generator.courses))
	for i := range assignment {
		assignment[i] = Unplaced
	}

	generator.constrainedScenarios(constraints, 0, assignment, &scenarios)
	return scenarios
}

// Returns false once the limit has been reached, so that every caller up the stack stops exploring
func (generator *scenarioGeneratorImplementation) constrainedScenarios(
	constraints []placementConstraint,
	depth int,
	assignment []int,
	scenarios *[]Scenario) bool {

	if depth >= len(generator.courses) {
		*scenarios = append(*scenarios, generator.scenario(assignment))
		return generator.limit <= 0 || len(*scenarios) < generator.limit
	}

	for i := range generator.courses[depth].Sections {
		assignment[depth] = i
		constraintViolated := false
		for _, constraint := range constraints {
			if !constraint(assignment, depth) {
				constraintViolated = true
				break
			}
		}

		if constraintViolated {
			continue
		}

		if !generator.constrainedScenarios(constraints, depth+1, assignment, scenarios) {
			assignment[depth] = Unplaced
			return false
		}
	}

	assignment[depth] = Unplaced
	return true
}

func (generator *scenarioGeneratorImplementation) scenario(assignment []int) Scenario {
	scenario := make(Scenario, len(assignment))
	for depth, section := range assignment {
		course := generator.courses[depth]
		scenario[depth] = ScenarioEntry{
			Code:    course.Code,
			Section: course.Sections[section].Number,
		}
	}
	return scenario
}
