package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

type rawElectiveCode struct {
	Departmental string
	Numeric      string
}

type rawElectiveSection struct {
	Id          string `mapstructure:"section_id"`
	Times       []model.ElectiveTime
	Instructors []string
}

type rawElective struct {
	Code     rawElectiveCode
	Name     string
	Credits  string
	Sections []rawElectiveSection
}

// ElectivesFromJson reads the list of electives open to every department
func ElectivesFromJson(file string) ([]model.Elective, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return DecodeElectives(bytes)
}

func DecodeElectives(bytes []byte) ([]model.Elective, error) {
	var electivesJson []any
	if err := json.Unmarshal(bytes, &electivesJson); err != nil {
		return nil, err
	}

	// Credits and codes are published either as strings or as numbers
	var rawElectives []rawElective
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &rawElectives,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(electivesJson); err != nil {
		return nil, fmt.Errorf("cannot decode electives: %w", err)
	}

	return lo.Map(rawElectives, func(raw rawElective, _ int) model.Elective {
		return model.Elective{
			Code:    raw.Code.Departmental,
			Numeric: raw.Code.Numeric,
			Name:    raw.Name,
			Credits: raw.Credits,
			Sections: lo.Map(raw.Sections, func(section rawElectiveSection, _ int) model.ElectiveSection {
				return model.ElectiveSection{
					Number:      section.Id,
					Instructors: section.Instructors,
					Times:       section.Times,
				}
			}),
		}
	}), nil
}
