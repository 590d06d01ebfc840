package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var courses = []model.Course{
	{
		Code:         5710213,
		Abbreviation: "CENG213",
		Sections: []model.Section{
			{Number: "1", Instructor: "Sahillioglu", Times: []model.TimeInterval{
				{Day: 0, StartHour: 8, StartMin: 40, EndHour: 10, EndMin: 30, Classroom: "BMB-1"},
				{Day: 2, StartHour: 15, StartMin: 40, EndHour: 17, EndMin: 30, Classroom: "BMB-4"},
			}},
			{Number: "2", Instructor: "Sener", Times: []model.TimeInterval{
				{Day: 1, StartHour: 9, StartMin: 40, EndHour: 11, EndMin: 30, Classroom: "U-3"},
			}},
		},
	},
	{
		Code:         5710140,
		Abbreviation: "CENG140",
		Sections: []model.Section{
			{Number: "1", Instructor: "Ucoluk", Times: []model.TimeInterval{
				{Day: 4, StartHour: 13, StartMin: 40, EndHour: 15, EndMin: 30, Classroom: "BMB-2"},
			}},
		},
	},
}

func TestScenarioRows(t *testing.T) {
	//**Arrange
	scenarios := []model.Scenario{
		{{Code: 5710213, Section: "1"}, {Code: 5710140, Section: "1"}},
		{{Code: 5710213, Section: "2"}, {Code: 5710140, Section: "9"}},
	}

	//**Act
	rows := ScenarioRows(scenarios, courses)

	//**Assert
	require.Len(t, rows, 4)
	assert.Equal(t, ScenarioRow{
		Scenario:     1,
		CourseCode:   5710213,
		Abbreviation: "CENG213",
		Section:      "1",
		Instructor:   "Sahillioglu",
		Day:          "Monday",
		Start:        "08:40",
		End:          "10:30",
		Classroom:    "BMB-1",
	}, rows[0])
	assert.Equal(t, "Wednesday", rows[1].Day)
	assert.Equal(t, "Friday", rows[2].Day)
	assert.Equal(t, 2, rows[3].Scenario)
	assert.Equal(t, "U-3", rows[3].Classroom)
}

func TestWriteScenarios(t *testing.T) {
	scenarios := []model.Scenario{{{Code: 5710140, Section: "1"}}}

	var buffer bytes.Buffer
	require.NoError(t, WriteScenarios(&buffer, scenarios, courses))
	str, err := ScenariosString(scenarios, courses)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	assert.Equal(t, []string{
		"scenario,course_code,abbreviation,section,instructor,day,start,end,classroom",
		"1,5710140,CENG140,1,Ucoluk,Friday,13:40,15:30,BMB-2",
	}, lines)
	assert.Equal(t, buffer.String(), str)
}
