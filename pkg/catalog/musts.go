package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var (
	ErrNoMusts         = errors.New("must courses are not available")
	ErrInvalidSemester = errors.New("semester must be at least 1")
)

// MustTable lists, per department and semester, the codes of the courses a student has to take
type MustTable map[string]map[string][]uint64

// MustsFromJson reads a file shaped as {"CENG": {"1": [5710111, ...], ...}, ...}
func MustsFromJson(file string) (MustTable, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return DecodeMusts(bytes)
}

func DecodeMusts(bytes []byte) (MustTable, error) {
	var mustsJson map[string]any
	if err := json.Unmarshal(bytes, &mustsJson); err != nil {
		return nil, err
	}

	// Codes are published either as strings or as numbers
	var musts MustTable
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &musts,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(mustsJson); err != nil {
		return nil, fmt.Errorf("cannot decode must courses: %w", err)
	}
	return musts, nil
}

// Musts returns the must course codes of a department's semester
func (musts MustTable) Musts(department string, semester int) ([]uint64, error) {
	department = strings.TrimSpace(department)
	if utf8.RuneCountInString(department) < 2 {
		return nil, model.ErrShortDepartment
	} else if semester < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSemester, semester)
	}

	codes, ok := musts[department][strconv.Itoa(semester)]
	if !ok {
		return nil, fmt.Errorf("%w: %v semester %d", ErrNoMusts, department, semester)
	}
	return slices.Clone(codes), nil
}

// AddMusts appends to selected the must codes not selected yet, skipping those missing from the catalog
func AddMusts(selected []uint64, musts []uint64, courses []model.RawCourse) []uint64 {
	merged := slices.Clone(selected)
	for _, code := range musts {
		if slices.Contains(merged, code) {
			continue
		}
		if !lo.ContainsBy(courses, func(course model.RawCourse) bool { return course.Code == code }) {
			continue
		}
		merged = append(merged, code)
	}
	return merged
}
