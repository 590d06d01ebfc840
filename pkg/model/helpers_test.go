package model

import (
	"fmt"
	"math/rand/v2"
)

func interval(day, startHour, startMin, endHour, endMin int) TimeInterval {
	return TimeInterval{Day: day, StartHour: startHour, StartMin: startMin, EndHour: endHour, EndMin: endMin}
}

func section(number string, times ...TimeInterval) Section {
	return Section{
		Number:   number,
		Times:    times,
		Criteria: []Criterion{},
		Toggle:   true,
	}
}

func course(code uint64, checkCollision bool, sections ...Section) Course {
	return Course{
		Code:           code,
		CheckCollision: checkCollision,
		Sections:       sections,
	}
}

// Lectures start at one of few hours so that random courses collide often
func generateCourses(rng *rand.Rand, totalCourses, maxSections int) []Course {
	courses := make([]Course, totalCourses)
	for i := range totalCourses {
		totalSections := rng.IntN(maxSections) + 1
		sections := make([]Section, totalSections)
		for j := range totalSections {
			times := make([]TimeInterval, rng.IntN(2)+1)
			for k := range times {
				startHour := 8 + rng.IntN(4)
				times[k] = interval(rng.IntN(2), startHour, 40*rng.IntN(2), startHour+1+rng.IntN(2), 30)
			}
			sections[j] = section(fmt.Sprint(j+1), times...)
			sections[j].Toggle = rng.Float32() < 0.9
			if rng.Float32() < 0.5 {
				sections[j].Criteria = []Criterion{
					{Department: "CENG", SurnameStart: "AA", SurnameEnd: "KZ"},
					{Department: AllDepartments, SurnameStart: "LA", SurnameEnd: "ZZ"},
				}
			}
		}
		courses[i] = Course{
			Code:            uint64(1000 + i),
			CheckSurname:    rng.Float32() < 0.5,
			CheckDepartment: rng.Float32() < 0.5,
			CheckCollision:  rng.Float32() < 0.8,
			Sections:        sections,
		}
	}
	return courses
}

// Enumerates the cross product of the given (already filtered) sections and keeps the feasible combinations
func bruteForceScenarios(courses []Course, dontFills []DontFill) []Scenario {
	combinations := [][]int{{}}
	for _, course := range courses {
		next := make([][]int, 0)
		for _, combination := range combinations {
			for i := range course.Sections {
				extended := append(append([]int{}, combination...), i)
				next = append(next, extended)
			}
		}
		combinations = next
	}

	scenarios := make([]Scenario, 0)
	for _, combination := range combinations {
		if len(courses) == 0 {
			break
		}
		feasible := true
		for i := range combination {
			times := courses[i].Sections[combination[i]].Times
			if CollidesWithDontFills(times, dontFills) {
				feasible = false
			}
			for j := range i {
				if courses[i].CheckCollision && SectionsCollide(times, courses[j].Sections[combination[j]].Times) {
					feasible = false
				}
			}
		}
		if !feasible {
			continue
		}

		scenario := make(Scenario, len(combination))
		for i, sectionIndex := range combination {
			scenario[i] = ScenarioEntry{Code: courses[i].Code, Section: courses[i].Sections[sectionIndex].Number}
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios
}
