package model

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEligibleCourses(t *testing.T) {
	lecture := interval(0, 8, 40, 10, 30)

	t.Run("Surname range", func(t *testing.T) {
		//**Arrange
		excluded := section("1", lecture)
		excluded.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "AA", SurnameEnd: "AZ"}}
		included := section("2", lecture)
		included.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "AA", SurnameEnd: "ZZ"}}
		courses := []Course{{Code: 5710213, CheckSurname: true, Sections: []Section{excluded, included}}}

		//**Act
		filtered := FilterEligibleCourses("BA", "CENG", courses, ByteOrder)

		//**Assert
		assert.Len(t, filtered, 1)
		assert.Equal(t, []string{"2"}, sectionNumbers(filtered[0]))
	})

	t.Run("Range bounds are inclusive", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "BA", SurnameEnd: "BE"}}
		courses := []Course{{Code: 1, CheckSurname: true, Sections: []Section{s}}}

		assert.Len(t, FilterEligibleCourses("BA", "", courses, ByteOrder), 1)
		assert.Len(t, FilterEligibleCourses("BE", "", courses, ByteOrder), 1)
		assert.Empty(t, FilterEligibleCourses("BF", "", courses, ByteOrder))
	})

	t.Run("Only the first two letters of the surname count", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "BA", SurnameEnd: "BE"}}
		courses := []Course{{Code: 1, CheckSurname: true, Sections: []Section{s}}}

		assert.Len(t, FilterEligibleCourses("BEZZY", "", courses, ByteOrder), 1)
	})

	t.Run("Department", func(t *testing.T) {
		//**Arrange
		ceng := section("1", lecture)
		ceng.Criteria = []Criterion{{Department: "CENG", SurnameStart: "AA", SurnameEnd: "ZZ"}}
		all := section("2", lecture)
		all.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "AA", SurnameEnd: "ZZ"}}
		ee := section("3", lecture)
		ee.Criteria = []Criterion{{Department: "EE", SurnameStart: "AA", SurnameEnd: "ZZ"}}
		courses := []Course{{Code: 1, CheckDepartment: true, Sections: []Section{ceng, all, ee}}}

		//**Act
		filtered := FilterEligibleCourses("XY", "CENG", courses, ByteOrder)
		lowercase := FilterEligibleCourses("XY", "ceng", courses, ByteOrder)

		//**Assert
		assert.Equal(t, []string{"1", "2"}, sectionNumbers(filtered[0]))
		assert.Equal(t, []string{"2"}, sectionNumbers(lowercase[0]))
	})

	t.Run("Criteria are alternatives", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = []Criterion{
			{Department: "CENG", SurnameStart: "AA", SurnameEnd: "FF"},
			{Department: "EE", SurnameStart: "AA", SurnameEnd: "ZZ"},
		}
		courses := []Course{{Code: 1, CheckDepartment: true, CheckSurname: true, Sections: []Section{s}}}

		assert.Len(t, FilterEligibleCourses("BA", "CENG", courses, ByteOrder), 1)
		assert.Len(t, FilterEligibleCourses("TA", "EE", courses, ByteOrder), 1)
		// Department of one criterion and surname of the other must not be combined
		assert.Empty(t, FilterEligibleCourses("TA", "CENG", courses, ByteOrder))
	})

	t.Run("Disabled checks always pass", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = []Criterion{{Department: "EE", SurnameStart: "AA", SurnameEnd: "AB"}}
		courses := []Course{{Code: 1, Sections: []Section{s}}}

		assert.Len(t, FilterEligibleCourses("ZZ", "CENG", courses, ByteOrder), 1)
	})

	t.Run("Missing criteria default to everyone", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = nil
		courses := []Course{{Code: 1, CheckDepartment: true, CheckSurname: true, Sections: []Section{s}}}

		assert.Len(t, FilterEligibleCourses("MU", "PHYS", courses, ByteOrder), 1)
	})

	t.Run("Untoggled sections are dropped", func(t *testing.T) {
		off := section("1", lecture)
		off.Toggle = false
		courses := []Course{{Code: 1, Sections: []Section{off, section("2", lecture)}}}

		filtered := FilterEligibleCourses("MU", "PHYS", courses, ByteOrder)

		assert.Equal(t, []string{"2"}, sectionNumbers(filtered[0]))
	})

	t.Run("Courses without sections are dropped", func(t *testing.T) {
		g := NewWithT(t)
		off := section("1", lecture)
		off.Toggle = false
		courses := []Course{
			{Code: 1, Sections: []Section{section("1", lecture)}},
			{Code: 2, Sections: []Section{off}},
			{Code: 3, Sections: []Section{section("1", lecture)}},
		}

		filtered := FilterEligibleCourses("MU", "PHYS", courses, ByteOrder)

		g.Expect(filtered).To(HaveLen(2))
		g.Expect(filtered).To(HaveEach(HaveField("Sections", HaveLen(1))))
		g.Expect([]uint64{filtered[0].Code, filtered[1].Code}).To(Equal([]uint64{1, 3}))
	})

	t.Run("Input is not modified", func(t *testing.T) {
		//**Arrange
		off := section("1", lecture)
		off.Toggle = false
		courses := []Course{
			{Code: 1, Sections: []Section{off, section("2", lecture), off}},
			{Code: 2, Sections: []Section{off}},
		}

		//**Act
		FilterEligibleCourses("MU", "PHYS", courses, ByteOrder)

		//**Assert
		assert.Len(t, courses, 2)
		assert.Equal(t, []string{"1", "2", "1"}, sectionNumbers(courses[0]))
		assert.Equal(t, []string{"1"}, sectionNumbers(courses[1]))
	})

	t.Run("Collation is injectable", func(t *testing.T) {
		s := section("1", lecture)
		s.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "CA", SurnameEnd: "DZ"}}
		courses := []Course{{Code: 1, CheckSurname: true, Sections: []Section{s}}}

		assert.Empty(t, FilterEligibleCourses("ÇE", "", courses, ByteOrder))
		assert.Len(t, FilterEligibleCourses("ÇE", "", courses, TurkishAlphabet), 1)
	})

	t.Run("Surname is cased by the collation", func(t *testing.T) {
		//**Arrange
		s := section("1", lecture)
		s.Criteria = []Criterion{{Department: AllDepartments, SurnameStart: "İA", SurnameEnd: "İZ"}}
		courses := []Course{{Code: 1, CheckSurname: true, Sections: []Section{s}}}
		input, err := ProcessRawInput(RawModelInput{
			Surname:    "ismail",
			Department: "CENG",
			Courses: []RawCourse{{Code: 1, Sections: []RawSection{{
				Number:   "1",
				Times:    []TimeInterval{lecture},
				Criteria: s.Criteria,
			}}}},
		})
		require.NoError(t, err)

		//**Act
		turkish, err := NewBacktrackingScheduler(TurkishAlphabet, 0, false).Build(input)
		require.NoError(t, err)

		//**Assert
		assert.Len(t, FilterEligibleCourses("ismail", "", courses, TurkishAlphabet), 1)
		assert.Len(t, FilterEligibleCourses("ılgaz", "", courses, TurkishAlphabet), 0)
		assert.Empty(t, FilterEligibleCourses("ismail", "", courses, ByteOrder))
		assert.Equal(t, []Scenario{{{Code: 1, Section: "1"}}}, turkish)
	})
}

func sectionNumbers(course Course) []string {
	numbers := make([]string, 0, len(course.Sections))
	for _, section := range course.Sections {
		numbers = append(numbers, section.Number)
	}
	return numbers
}
