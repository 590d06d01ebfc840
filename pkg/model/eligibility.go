package model

import (
	"slices"
	"strings"

	"github.com/samber/lo"
)

// FilterEligibleCourses keeps, for every course, the toggled sections the student is eligible for. Courses left without
// sections are dropped. The given courses are not modified
func FilterEligibleCourses(surname, department string, courses []Course, collation Collation) []Course {
	if collation == nil {
		collation = ByteOrder
	}
	surname = surnamePrefix(surname, collation)

	return lo.FilterMap(courses, func(course Course, _ int) (Course, bool) {
		filtered := course
		filtered.Sections = lo.Filter(course.Sections, func(section Section, _ int) bool {
			return sectionEligible(surname, department, course, section, collation)
		})
		return filtered, len(filtered.Sections) > 0
	})
}

func sectionEligible(surname, department string, course Course, section Section, collation Collation) bool {
	if !section.Toggle {
		return false
	}

	criteria := section.Criteria
	if len(criteria) == 0 {
		criteria = withDefaultCriteria(nil)
	}

	return slices.ContainsFunc(criteria, func(criterion Criterion) bool {
		return (!course.CheckDepartment || departmentMatches(department, criterion)) &&
			(!course.CheckSurname || surnameInRange(surname, criterion, collation))
	})
}

func departmentMatches(department string, criterion Criterion) bool {
	return criterion.Department == AllDepartments || criterion.Department == department
}

// Bounds are inclusive
func surnameInRange(surname string, criterion Criterion, collation Collation) bool {
	return collation.Compare(criterion.SurnameStart, surname) <= 0 && collation.Compare(surname, criterion.SurnameEnd) <= 0
}

// The prefix is taken after casing, since an uppercase letter may span more runes than its lowercase one
func surnamePrefix(surname string, collation Collation) string {
	return leadingRunes(collation.Upper(strings.TrimSpace(surname)), SurnamePrefixSize)
}
