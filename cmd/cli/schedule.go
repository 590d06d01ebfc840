package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/limaJavier/scheduling/pkg/catalog"
	"github.com/limaJavier/scheduling/pkg/export"
	"github.com/limaJavier/scheduling/pkg/model"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	exitScenarios    = 10
	exitVerification = 15
	exitNoScenarios  = 20
)

var validFormats = []string{"json", "csv"}

var errNoCourses = errors.New("no course was selected, use --courses or --musts")

type scheduleOptions struct {
	file       string
	catalog    string
	courses    []uint
	musts      string
	surname    string
	department string
	grade      int
	out        string
	format     string
	collation  string
	max        int
	requireAll bool
	skipVerify bool
}

var scheduleFlags scheduleOptions

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Lists every scenario of an input file or of a selection of catalog courses",
	Long: `Lists every scenario of the input given by --file, or of the courses picked with --courses
from the catalog given by --catalog, to which --musts adds the must courses of the department's
semester. The process exits with 10 when scenarios exist and 20 when none does`,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := scheduleFlags
		options.format = strings.ToLower(options.format)
		if !slices.Contains(validFormats, options.format) {
			return fmt.Errorf("%v is not a valid format", options.format)
		}

		//** Settings given as flags take precedence over the configuration
		if cmd.Flags().Changed("collation") {
			configuration.Collation = options.collation
		}
		if cmd.Flags().Changed("max") {
			configuration.MaxScenarios = options.max
		}
		if cmd.Flags().Changed("require-all") {
			configuration.RequireAllCourses = options.requireAll
		}

		input, err := loadInput(options)
		if err != nil {
			return fmt.Errorf("cannot parse input: %w", err)
		}

		scheduler, err := configuration.Scheduler()
		if err != nil {
			return err
		}

		scenarios, err := scheduler.Build(input)
		if err != nil {
			return fmt.Errorf("an error occurred during scenario construction: %w", err)
		}

		if !options.skipVerify && !scheduler.Verify(scenarios, input) {
			log.Error("Verification failed")
			os.Exit(exitVerification)
		}

		output, err := renderScenarios(scenarios, input.Courses, options.format)
		if err != nil {
			return err
		}

		// Write to the Standard Output when no file is given
		if options.out == "" {
			fmt.Print(string(output))
		} else if err := os.WriteFile(options.out, output, 0666); err != nil {
			return fmt.Errorf("an error occurred while writing to the output file: %w", err)
		}

		log.WithField("scenarios", len(scenarios)).Info("Scenarios built")
		if len(scenarios) == 0 {
			os.Exit(exitNoScenarios)
		}
		os.Exit(exitScenarios)
		return nil
	},
}

func init() {
	flags := scheduleCmd.Flags()
	flags.StringVar(&scheduleFlags.file, "file", "", "Path to the input file")
	flags.StringVar(&scheduleFlags.catalog, "catalog", "", "Path to the course catalog, used along with --courses instead of --file")
	flags.UintSliceVar(&scheduleFlags.courses, "courses", nil, "Codes of the catalog courses to take")
	flags.StringVar(&scheduleFlags.musts, "musts", "", "Path to the must courses file; adds the must courses of --department for semester --grade")
	flags.StringVar(&scheduleFlags.surname, "surname", "", "Surname of the student, used with --catalog")
	flags.StringVar(&scheduleFlags.department, "department", "", "Department of the student, used with --catalog")
	flags.IntVar(&scheduleFlags.grade, "grade", 0, "Grade (semester) of the student, used with --catalog")
	flags.StringVar(&scheduleFlags.out, "out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flags.StringVar(&scheduleFlags.format, "format", "json", `Output format, either "json" or "csv"`)
	flags.StringVar(&scheduleFlags.collation, "collation", "", `Surname ordering, either "byte" or "turkish"; overrides the configuration`)
	flags.IntVar(&scheduleFlags.max, "max", 0, "Stop after this many scenarios, 0 for no limit; overrides the configuration")
	flags.BoolVar(&scheduleFlags.requireAll, "require-all", false, "Yield no scenarios when a course has no eligible section instead of dropping it")
	flags.BoolVar(&scheduleFlags.skipVerify, "skip-verify", false, "Do not verify the scenarios before writing them")
	scheduleCmd.MarkFlagsMutuallyExclusive("file", "catalog")
	scheduleCmd.MarkFlagsOneRequired("file", "catalog")
	scheduleCmd.MarkFlagsMutuallyExclusive("file", "musts")

	rootCmd.AddCommand(scheduleCmd)
}

func loadInput(options scheduleOptions) (model.ModelInput, error) {
	if options.file != "" {
		return model.InputFromJson(options.file)
	}

	courses, err := catalog.CoursesFromJson(options.catalog)
	if err != nil {
		return model.ModelInput{}, err
	}

	codes := lo.Map(options.courses, func(code uint, _ int) uint64 { return uint64(code) })
	if options.musts != "" {
		table, err := catalog.MustsFromJson(options.musts)
		if err != nil {
			return model.ModelInput{}, err
		}
		musts, err := table.Musts(options.department, options.grade)
		if err != nil {
			return model.ModelInput{}, err
		}
		codes = catalog.AddMusts(codes, musts, courses)
	}
	if len(codes) == 0 {
		return model.ModelInput{}, errNoCourses
	}

	selected, err := catalog.Select(courses, codes)
	if err != nil {
		return model.ModelInput{}, err
	}

	return model.ProcessRawInput(model.RawModelInput{
		Surname:    options.surname,
		Department: options.department,
		Grade:      options.grade,
		Courses:    selected,
	})
}

func renderScenarios(scenarios []model.Scenario, courses []model.Course, format string) ([]byte, error) {
	if format == "csv" {
		str, err := export.ScenariosString(scenarios, courses)
		if err != nil {
			return nil, fmt.Errorf("an error occurred while building output csv: %w", err)
		}
		return []byte(str), nil
	}

	bytes, err := json.Marshal(scenarios)
	if err != nil {
		return nil, fmt.Errorf("an error occurred while building output json: %w", err)
	}
	return append(bytes, '\n'), nil
}
