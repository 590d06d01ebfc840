package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var ErrUnknownCourse = errors.New("course is not in the catalog")

type rawTime struct {
	Place string `mapstructure:"p"`
	Day   int    `mapstructure:"d"`
	Start string `mapstructure:"s"`
	End   string `mapstructure:"e"`
}

type rawCriterion struct {
	Department string `mapstructure:"d"`
	Start      string `mapstructure:"s"`
	End        string `mapstructure:"e"`
}

type rawSection struct {
	Instructors []string       `mapstructure:"i"`
	Times       []rawTime      `mapstructure:"t"`
	Criteria    []rawCriterion `mapstructure:"c"`
}

type rawCourse struct {
	Name     string                `mapstructure:"Course Name"`
	Sections map[string]rawSection `mapstructure:"Sections"`
}

// CoursesFromJson reads a catalog file keyed by course code, as published by the course scraper
func CoursesFromJson(file string) ([]model.RawCourse, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return DecodeCourses(bytes)
}

// DecodeCourses returns the catalog courses sorted by code, with their sections sorted by number. Lecture times whose
// clocks cannot be parsed are skipped
func DecodeCourses(bytes []byte) ([]model.RawCourse, error) {
	var catalogJson map[string]any
	if err := json.Unmarshal(bytes, &catalogJson); err != nil {
		return nil, err
	}

	var rawCatalog map[string]rawCourse
	if err := mapstructure.Decode(catalogJson, &rawCatalog); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}

	courses := make([]model.RawCourse, 0, len(rawCatalog))
	for codeStr, raw := range rawCatalog {
		code, err := strconv.ParseUint(codeStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid course code %q: %w", codeStr, err)
		}

		abbreviation, name := splitCourseName(raw.Name)
		course := model.RawCourse{
			Code:         code,
			Abbreviation: abbreviation,
			Name:         name,
			Sections:     make([]model.RawSection, 0, len(raw.Sections)),
		}

		numbers := lo.Keys(raw.Sections)
		slices.SortFunc(numbers, compareSectionNumbers)
		for _, number := range numbers {
			course.Sections = append(course.Sections, toRawSection(number, raw.Sections[number]))
		}

		courses = append(courses, course)
	}

	slices.SortFunc(courses, func(a, b model.RawCourse) int {
		if a.Code < b.Code {
			return -1
		} else if a.Code > b.Code {
			return 1
		}
		return 0
	})
	return courses, nil
}

// Select picks the courses with the given codes, in the order of the codes
func Select(courses []model.RawCourse, codes []uint64) ([]model.RawCourse, error) {
	selected := make([]model.RawCourse, 0, len(codes))
	for _, code := range codes {
		course, ok := lo.Find(courses, func(course model.RawCourse) bool { return course.Code == code })
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownCourse, code)
		}
		selected = append(selected, course)
	}
	return selected, nil
}

func toRawSection(number string, raw rawSection) model.RawSection {
	section := model.RawSection{
		Number:     number,
		Instructor: lo.FirstOr(raw.Instructors, ""),
		Criteria: lo.Map(raw.Criteria, func(criterion rawCriterion, _ int) model.Criterion {
			return model.Criterion{Department: criterion.Department, SurnameStart: criterion.Start, SurnameEnd: criterion.End}
		}),
		Times: make([]model.TimeInterval, 0, len(raw.Times)),
	}

	for _, time := range raw.Times {
		startHour, startMin, err := model.ParseClock(time.Start)
		if err != nil {
			continue
		}
		endHour, endMin, err := model.ParseClock(time.End)
		if err != nil {
			continue
		}
		section.Times = append(section.Times, model.TimeInterval{
			Day:       time.Day,
			StartHour: startHour,
			StartMin:  startMin,
			EndHour:   endHour,
			EndMin:    endMin,
			Classroom: time.Place,
		})
	}

	return section
}

// "CENG213 - Data Structures" is split into "CENG213" and "Data Structures"
func splitCourseName(fullName string) (abbreviation string, name string) {
	abbreviation, _, _ = strings.Cut(fullName, " ")
	if _, rest, ok := strings.Cut(fullName, "-"); ok {
		return abbreviation, strings.TrimSpace(rest)
	}
	return abbreviation, fullName
}

// Numeric section numbers are ordered by value, the rest lexicographically after them
func compareSectionNumbers(a, b string) int {
	numberA, errA := strconv.Atoi(a)
	numberB, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return numberA - numberB
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
