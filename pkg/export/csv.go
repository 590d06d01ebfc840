package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/samber/lo"
)

var Days = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

// ScenarioRow is one lecture time of a section chosen by a scenario
type ScenarioRow struct {
	Scenario     int    `csv:"scenario"`
	CourseCode   uint64 `csv:"course_code"`
	Abbreviation string `csv:"abbreviation"`
	Section      string `csv:"section"`
	Instructor   string `csv:"instructor"`
	Day          string `csv:"day"`
	Start        string `csv:"start"`
	End          string `csv:"end"`
	Classroom    string `csv:"classroom"`
}

// ScenarioRows flattens the scenarios into rows numbered from 1. Entries whose course or section is not among the given
// courses are skipped
func ScenarioRows(scenarios []model.Scenario, courses []model.Course) []ScenarioRow {
	rows := make([]ScenarioRow, 0)
	for i, scenario := range scenarios {
		for _, entry := range scenario {
			course, ok := lo.Find(courses, func(course model.Course) bool { return course.Code == entry.Code })
			if !ok {
				continue
			}
			section, ok := lo.Find(course.Sections, func(section model.Section) bool { return section.Number == entry.Section })
			if !ok {
				continue
			}

			for _, time := range section.Times {
				rows = append(rows, ScenarioRow{
					Scenario:     i + 1,
					CourseCode:   course.Code,
					Abbreviation: course.Abbreviation,
					Section:      section.Number,
					Instructor:   section.Instructor,
					Day:          Days[time.Day],
					Start:        fmt.Sprintf("%02d:%02d", time.StartHour, time.StartMin),
					End:          fmt.Sprintf("%02d:%02d", time.EndHour, time.EndMin),
					Classroom:    time.Classroom,
				})
			}
		}
	}
	return rows
}

func WriteScenarios(w io.Writer, scenarios []model.Scenario, courses []model.Course) error {
	rows := ScenarioRows(scenarios, courses)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("cannot write scenarios: %w", err)
	}
	return nil
}

func ScenariosString(scenarios []model.Scenario, courses []model.Course) (string, error) {
	rows := ScenarioRows(scenarios, courses)
	return gocsv.MarshalString(&rows)
}
