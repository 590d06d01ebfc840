package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	resultsFile         = "benchmark_results.csv"
	MB          float32 = 1024 * 1024
)

type ResultType int

const (
	feasible ResultType = iota
	infeasible
	truncated
)

var resultTypes = map[ResultType]string{
	feasible:   "feasible",
	infeasible: "infeasible",
	truncated:  "truncated",
}

type TestMetadata struct {
	Name      string
	Seed      uint64
	Courses   int
	Sections  int
	DontFills int
	Input     model.ModelInput
}

type SchedulerMetadata struct {
	Collation    model.Collation
	MaxScenarios int
}

type BenchmarkResult struct {
	Test         string  `csv:"Test"`
	Collation    string  `csv:"Collation"`
	MaxScenarios int     `csv:"Max-Scenarios"`
	Courses      int     `csv:"Courses"`
	Sections     int     `csv:"Sections"`
	DontFills    int     `csv:"DontFills"`
	Eligible     int     `csv:"Eligible-Sections"`
	Scenarios    int     `csv:"Scenarios"`
	Duration     int64   `csv:"Duration(us)"`
	Memory       float32 `csv:"Allocated(MB)"`
	Result       string  `csv:"Result"`
}

func main() {
	seed := flag.Uint64("seed", 1, "Seed of the random inputs")
	repetitions := flag.Int("tests", 3, "Number of random inputs per size")
	out := flag.String("out", resultsFile, "Path to the CSV file where the results will be written")
	flag.Parse()

	tests := getTests(*seed, *repetitions)
	schedulers := getSchedulers()
	results := make([]BenchmarkResult, 0, len(tests)*len(schedulers))

	for _, test := range tests {
		for _, scheduler := range schedulers {
			log.Infof("Benchmarking test \"%v\" with collation \"%v\" and limit \"%v\"", test.Name, scheduler.Collation.Name(), scheduler.MaxScenarios)
			results = append(results, measure(test, scheduler))
		}
	}

	if err := toCsv(results, *out); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func getTests(seed uint64, repetitions int) []TestMetadata {
	sizes := lo.Zip2([]int{4, 6, 8, 10}, []int{3, 4, 5, 6})
	tests := make([]TestMetadata, 0, len(sizes)*repetitions)
	for _, size := range sizes {
		courses, sections := size.A, size.B
		for i := range repetitions {
			testSeed := seed + uint64(i)
			rng := rand.New(rand.NewPCG(testSeed, uint64(courses*sections)))
			input, err := model.ProcessRawInput(generateInput(rng, courses, sections))
			if err != nil {
				log.Fatalf("cannot process generated input: %v", err)
			}

			tests = append(tests, TestMetadata{
				Name:      fmt.Sprintf("%dx%d-%d", courses, sections, testSeed),
				Seed:      testSeed,
				Courses:   courses,
				Sections:  sections,
				DontFills: len(input.DontFills),
				Input:     input,
			})
		}
	}
	return tests
}

func getSchedulers() []SchedulerMetadata {
	return []SchedulerMetadata{
		{
			Collation: model.ByteOrder,
		},

		{
			Collation: model.TurkishAlphabet,
		},

		{
			Collation:    model.ByteOrder,
			MaxScenarios: 100,
		},
	}
}

// generateInput draws courses whose sections meet on two days between 8:40 and 17:30, so that collisions are frequent
func generateInput(rng *rand.Rand, courses, sections int) model.RawModelInput {
	input := model.RawModelInput{
		Surname:    "BAYRAM",
		Department: "CENG",
		Courses:    make([]model.RawCourse, courses),
	}

	for i := range courses {
		course := model.RawCourse{
			Code:         uint64(5710000 + i),
			Abbreviation: fmt.Sprintf("CENG%d", 100+i),
			Sections:     make([]model.RawSection, sections),
		}
		for j := range sections {
			section := model.RawSection{Number: fmt.Sprint(j + 1)}
			for range 2 {
				startHour := 8 + rng.IntN(8)
				section.Times = append(section.Times, model.TimeInterval{
					Day:       rng.IntN(5),
					StartHour: startHour,
					StartMin:  40,
					EndHour:   startHour + 1 + rng.IntN(2),
					EndMin:    30,
				})
			}
			if rng.Float32() < 0.3 {
				section.Criteria = []model.Criterion{{Department: "CENG", SurnameStart: "AA", SurnameEnd: "KZ"}}
			}
			course.Sections[j] = section
		}
		input.Courses[i] = course
	}

	if rng.Float32() < 0.5 {
		input.DontFills = append(input.DontFills, model.RawDontFill{Day: rng.IntN(5), Start: "12:40", End: "13:30"})
	}
	return input
}

func measure(test TestMetadata, metadata SchedulerMetadata) BenchmarkResult {
	scheduler := model.NewBacktrackingScheduler(metadata.Collation, metadata.MaxScenarios, false)
	eligible := model.FilterEligibleCourses(test.Input.Surname, test.Input.Department, test.Input.Courses, metadata.Collation)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()

	scenarios, err := scheduler.Build(test.Input)

	duration := time.Since(start)
	runtime.ReadMemStats(&after)
	if err != nil {
		log.Fatalf("an error occurred at test \"%v\" using collation \"%v\": %v", test.Name, metadata.Collation.Name(), err)
	}
	if !scheduler.Verify(scenarios, test.Input) {
		log.Fatalf("verification failed at test \"%v\" using collation \"%v\"", test.Name, metadata.Collation.Name())
	}

	return BenchmarkResult{
		Test:         test.Name,
		Collation:    metadata.Collation.Name(),
		MaxScenarios: metadata.MaxScenarios,
		Courses:      test.Courses,
		Sections:     test.Sections,
		DontFills:    test.DontFills,
		Eligible:     lo.SumBy(eligible, func(course model.Course) int { return len(course.Sections) }),
		Scenarios:    len(scenarios),
		Duration:     duration.Microseconds(),
		Memory:       float32(after.TotalAlloc-before.TotalAlloc) / MB,
		Result:       resultTypes[resultType(len(scenarios), metadata.MaxScenarios)],
	}
}

func resultType(scenarios, maxScenarios int) ResultType {
	if scenarios == 0 {
		return infeasible
	} else if maxScenarios > 0 && scenarios == maxScenarios {
		return truncated
	}
	return feasible
}

func toCsv(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	return gocsv.MarshalFile(&results, file)
}
