package model

type Scheduler interface {
	// Returns every eligible and collision-free scenario. An empty result means there is no feasible schedule and it is
	// not an error
	Build(
		modelInput ModelInput,
	) (scenarios []Scenario, err error)

	Verify(
		scenarios []Scenario,
		modelInput ModelInput,
	) bool
}

// ComputeSchedule builds every scenario with plain string ordering for surnames and no limit
func ComputeSchedule(surname, department string, grade int, courses []Course, dontFills []DontFill) []Scenario {
	scheduler := NewBacktrackingScheduler(ByteOrder, 0, false)
	scenarios, _ := scheduler.Build(ModelInput{
		Surname:    surname,
		Department: department,
		Grade:      grade,
		Courses:    courses,
		DontFills:  dontFills,
	})
	return scenarios
}
