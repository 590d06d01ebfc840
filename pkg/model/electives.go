package model

import (
	"github.com/samber/lo"
)

var weekDays = map[string]int{
	"Mon": 0,
	"Tue": 1,
	"Wed": 2,
	"Thu": 3,
	"Fri": 4,
	"Sat": 5,
	"Sun": 6,
}

type ElectiveTime struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
	Room  string `json:"room,omitempty"`
}

type ElectiveSection struct {
	Number      string         `json:"section"`
	Instructors []string       `json:"instructors,omitempty"`
	Times       []ElectiveTime `json:"times"`
}

// Elective is a course offered outside the student's curriculum, whose times come as "Mon" and "HH:MM" strings
type Elective struct {
	Code     string            `json:"code"`
	Numeric  string            `json:"numeric,omitempty"`
	Name     string            `json:"name"`
	Credits  string            `json:"credits,omitempty"`
	Sections []ElectiveSection `json:"sections"`
}

// Interval converts the time into a TimeInterval; ok is false for unknown days ("No Timestamp Added Yet" among others)
// and malformed clocks
func (electiveTime ElectiveTime) Interval() (interval TimeInterval, ok bool) {
	day, ok := weekDays[electiveTime.Day]
	if !ok {
		return TimeInterval{}, false
	}
	startHour, startMin, err := ParseClock(electiveTime.Start)
	if err != nil {
		return TimeInterval{}, false
	}
	endHour, endMin, err := ParseClock(electiveTime.End)
	if err != nil {
		return TimeInterval{}, false
	}

	room := electiveTime.Room
	if room == "" {
		room = "TBA"
	}

	interval = TimeInterval{
		Day:       day,
		StartHour: startHour,
		StartMin:  startMin,
		EndHour:   endHour,
		EndMin:    endMin,
		Classroom: room,
	}
	return interval, interval.validate() == nil
}

// OccupiedIntervals collects the lecture times of the sections chosen by a scenario
func OccupiedIntervals(scenario Scenario, courses []Course) []TimeInterval {
	occupied := make([]TimeInterval, 0)
	for _, entry := range scenario {
		course, ok := lo.Find(courses, func(course Course) bool { return course.Code == entry.Code })
		if !ok {
			continue
		}
		section, ok := lo.Find(course.Sections, func(section Section) bool { return section.Number == entry.Section })
		if !ok {
			continue
		}
		occupied = append(occupied, section.Times...)
	}
	return occupied
}

// FilterAvailableElectives keeps the sections whose every time is known and free (a section without times is always
// free), and the electives left with at least one of them
func FilterAvailableElectives(electives []Elective, occupied []TimeInterval) []Elective {
	return lo.FilterMap(electives, func(elective Elective, _ int) (Elective, bool) {
		available := elective
		available.Sections = lo.Filter(elective.Sections, func(section ElectiveSection, _ int) bool {
			return lo.EveryBy(section.Times, func(electiveTime ElectiveTime) bool {
				interval, ok := electiveTime.Interval()
				return ok && !SectionsCollide([]TimeInterval{interval}, occupied)
			})
		})
		return available, len(available.Sections) > 0
	})
}
