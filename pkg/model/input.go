package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const (
	AllDepartments     = "ALL"
	DefaultSurnameFrom = "AA"
	DefaultSurnameTo   = "ZZ"
	SurnamePrefixSize  = 2
)

var (
	ErrShortSurname    = errors.New("surname must have at least 2 letters")
	ErrShortDepartment = errors.New("department must have at least 2 letters")
	ErrInvalidInterval = errors.New("invalid time interval")
	ErrDuplicateCourse = errors.New("duplicate course")
)

// TimeInterval is a single weekly occurrence of a lecture or a blocked window. Day goes from 0 (Monday) to 6 (Sunday)
type TimeInterval struct {
	Day       int    `json:"day"`
	StartHour int    `json:"startHour"`
	StartMin  int    `json:"startMin"`
	EndHour   int    `json:"endHour"`
	EndMin    int    `json:"endMin"`
	Classroom string `json:"classroom,omitempty"`
}

// Start returns the minutes elapsed since midnight until the interval begins
func (interval TimeInterval) Start() int {
	return interval.StartHour*60 + interval.StartMin
}

// End returns the minutes elapsed since midnight until the interval finishes
func (interval TimeInterval) End() int {
	return interval.EndHour*60 + interval.EndMin
}

func (interval TimeInterval) validate() error {
	if interval.Day < 0 || interval.Day > 6 ||
		interval.StartHour < 0 || interval.StartHour > 24 || interval.EndHour < 0 || interval.EndHour > 24 ||
		interval.StartMin < 0 || interval.StartMin > 59 || interval.EndMin < 0 || interval.EndMin > 59 ||
		interval.End() > 24*60 || interval.End() <= interval.Start() {
		return fmt.Errorf("%w: day %d %02d:%02d-%02d:%02d", ErrInvalidInterval, interval.Day, interval.StartHour, interval.StartMin, interval.EndHour, interval.EndMin)
	}
	return nil
}

type Criterion struct {
	Department   string `json:"dept" mapstructure:"dept"`
	SurnameStart string `json:"surnameStart"`
	SurnameEnd   string `json:"surnameEnd"`
}

type Section struct {
	Number     string         `json:"sectionNumber" mapstructure:"sectionNumber"`
	Instructor string         `json:"instructor"`
	Times      []TimeInterval `json:"lectureTimes" mapstructure:"lectureTimes"`
	Criteria   []Criterion    `json:"criteria"`
	Toggle     bool           `json:"toggle"`
}

type Course struct {
	Code            uint64    `json:"code"`
	Abbreviation    string    `json:"abbreviation,omitempty"`
	Name            string    `json:"name,omitempty"`
	Category        int       `json:"category"`
	CheckSurname    bool      `json:"checkSurname"`
	CheckDepartment bool      `json:"checkDepartment"`
	CheckCollision  bool      `json:"checkCollision"`
	Sections        []Section `json:"sections"`
}

// DontFill is a set of time ranges the student declared unavailable
type DontFill struct {
	Times []TimeInterval `json:"times"`
}

type ScenarioEntry struct {
	Code    uint64 `json:"code"`
	Section string `json:"section"`
}

// Scenario holds one section per course, in the courses' order
type Scenario []ScenarioEntry

type ModelInput struct {
	Surname    string // Leading letters as typed, the collation upper-cases them
	Department string
	Grade      int // Reserved, the search does not use it
	Courses    []Course
	DontFills  []DontFill
}

// Settings are the global switches; a nil value stands for enabled
type Settings struct {
	CheckSurname    *bool `json:"checkSurname,omitempty"`
	CheckDepartment *bool `json:"checkDepartment,omitempty"`
	CheckCollision  *bool `json:"checkCollision,omitempty"`
}

type CourseSettings struct {
	Settings `mapstructure:",squash"`
	Disabled bool `json:"disableCourse,omitempty" mapstructure:"disableCourse"`
}

type RawSection struct {
	Number     string         `json:"sectionNumber" mapstructure:"sectionNumber"`
	Instructor string         `json:"instructor"`
	Times      []TimeInterval `json:"lectureTimes" mapstructure:"lectureTimes"`
	Criteria   []Criterion    `json:"criteria"`
	Toggle     *bool          `json:"toggle,omitempty"` // nil stands for toggled on
	Disabled   bool           `json:"disabled,omitempty"`
}

type RawCourse struct {
	Code         uint64         `json:"code"`
	Abbreviation string         `json:"abbreviation,omitempty"`
	Name         string         `json:"name,omitempty"`
	Category     int            `json:"category"`
	Settings     CourseSettings `json:"settings"`
	Sections     []RawSection   `json:"sections"`
}

// RawDontFill is a blocked window as entered by the student, with "HH:MM" bounds
type RawDontFill struct {
	Day   int    `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type RawModelInput struct {
	Surname    string        `json:"surname"`
	Department string        `json:"department"`
	Grade      int           `json:"grade"`
	Settings   Settings      `json:"settings"`
	Courses    []RawCourse   `json:"courses"`
	DontFills  []RawDontFill `json:"dontFills" mapstructure:"dontFills"`
}

func InputFromJson(file string) (ModelInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ModelInput{}, err
	}
	return InputFromBytes(bytes)
}

func InputFromBytes(bytes []byte) (ModelInput, error) {
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ModelInput{}, err
	}

	var rawInput RawModelInput
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ModelInput{}, fmt.Errorf("cannot decode input: %w", err)
	}
	return ProcessRawInput(rawInput)
}

// ProcessRawInput resolves the effective settings of every course and drops what cannot take part in the search:
// disabled courses, sections without lecture times and courses left without sections
func ProcessRawInput(rawInput RawModelInput) (ModelInput, error) {
	checkSurname := enabled(rawInput.Settings.CheckSurname)
	checkDepartment := enabled(rawInput.Settings.CheckDepartment)
	checkCollision := enabled(rawInput.Settings.CheckCollision)

	surname := strings.TrimSpace(rawInput.Surname)
	department := strings.TrimSpace(rawInput.Department)
	if checkSurname && utf8.RuneCountInString(surname) < SurnamePrefixSize {
		return ModelInput{}, ErrShortSurname
	} else if checkDepartment && utf8.RuneCountInString(department) < 2 {
		return ModelInput{}, ErrShortDepartment
	}

	input := ModelInput{
		Surname:    leadingRunes(surname, SurnamePrefixSize),
		Department: department,
		Grade:      rawInput.Grade,
		Courses:    make([]Course, 0, len(rawInput.Courses)),
		DontFills:  make([]DontFill, 0, len(rawInput.DontFills)),
	}

	seenCodes := make(map[uint64]bool)
	for _, rawCourse := range rawInput.Courses {
		if seenCodes[rawCourse.Code] {
			return ModelInput{}, fmt.Errorf("%w: %d", ErrDuplicateCourse, rawCourse.Code)
		}
		seenCodes[rawCourse.Code] = true

		if rawCourse.Settings.Disabled {
			continue
		}

		course := Course{
			Code:            rawCourse.Code,
			Abbreviation:    rawCourse.Abbreviation,
			Name:            rawCourse.Name,
			Category:        rawCourse.Category,
			CheckSurname:    checkSurname && enabled(rawCourse.Settings.CheckSurname),
			CheckDepartment: checkDepartment && enabled(rawCourse.Settings.CheckDepartment),
			CheckCollision:  checkCollision && enabled(rawCourse.Settings.CheckCollision),
			Sections:        make([]Section, 0, len(rawCourse.Sections)),
		}

		for i, rawSection := range rawCourse.Sections {
			if len(rawSection.Times) == 0 {
				continue
			}
			for _, interval := range rawSection.Times {
				if err := interval.validate(); err != nil {
					return ModelInput{}, fmt.Errorf("course %d section %q: %w", rawCourse.Code, rawSection.Number, err)
				}
			}

			number := rawSection.Number
			if number == "" {
				number = strconv.Itoa(i + 1)
			}

			course.Sections = append(course.Sections, Section{
				Number:     number,
				Instructor: rawSection.Instructor,
				Times:      slices.Clone(rawSection.Times),
				Criteria:   withDefaultCriteria(rawSection.Criteria),
				Toggle:     enabled(rawSection.Toggle) && !rawSection.Disabled,
			})
		}

		if len(course.Sections) > 0 {
			input.Courses = append(input.Courses, course)
		}
	}

	for _, rawDontFill := range rawInput.DontFills {
		interval, err := rawDontFill.interval()
		if err != nil {
			return ModelInput{}, err
		}
		input.DontFills = append(input.DontFills, DontFill{Times: []TimeInterval{interval}})
	}

	return input, nil
}

// ParseClock parses an "HH:MM" string into hour and minute
func ParseClock(clock string) (hour int, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: malformed clock %q", ErrInvalidInterval, clock)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed hour in %q", ErrInvalidInterval, clock)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed minute in %q", ErrInvalidInterval, clock)
	}
	return hour, minute, nil
}

func (rawDontFill RawDontFill) interval() (TimeInterval, error) {
	startHour, startMin, err := ParseClock(rawDontFill.Start)
	if err != nil {
		return TimeInterval{}, err
	}
	endHour, endMin, err := ParseClock(rawDontFill.End)
	if err != nil {
		return TimeInterval{}, err
	}

	interval := TimeInterval{
		Day:       rawDontFill.Day,
		StartHour: startHour,
		StartMin:  startMin,
		EndHour:   endHour,
		EndMin:    endMin,
	}
	return interval, interval.validate()
}

func withDefaultCriteria(criteria []Criterion) []Criterion {
	if len(criteria) == 0 {
		return []Criterion{{Department: AllDepartments, SurnameStart: DefaultSurnameFrom, SurnameEnd: DefaultSurnameTo}}
	}
	return slices.Clone(criteria)
}

func leadingRunes(s string, size int) string {
	runes := []rune(s)
	return string(runes[:min(len(runes), size)])
}

func enabled(setting *bool) bool {
	return lo.FromPtrOr(setting, true)
}
