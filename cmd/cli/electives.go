package main

import (
	"encoding/json"
	"fmt"

	"github.com/limaJavier/scheduling/pkg/catalog"
	"github.com/limaJavier/scheduling/pkg/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	electivesFile     string
	electivesInput    string
	electivesScenario int
)

var electivesCmd = &cobra.Command{
	Use:   "electives",
	Short: "Lists the elective sections that fit around a scenario",
	Long: `Builds the scenarios of --input, takes the one numbered by --scenario (starting at 1)
and lists the sections of the electives in --file whose times are all free`,
	RunE: func(cmd *cobra.Command, args []string) error {
		electives, err := catalog.ElectivesFromJson(electivesFile)
		if err != nil {
			return fmt.Errorf("cannot parse electives: %w", err)
		}
		input, err := model.InputFromJson(electivesInput)
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

		available, err := availableElectives(electives, scenarios, input.Courses, electivesScenario)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"electives": len(electives), "available": len(available)}).Info("Electives filtered")

		bytes, err := json.Marshal(available)
		if err != nil {
			return fmt.Errorf("an error occurred while building output json: %w", err)
		}
		fmt.Println(string(bytes))
		return nil
	},
}

func init() {
	electivesCmd.Flags().StringVar(&electivesFile, "file", "", "Path to the electives file")
	electivesCmd.Flags().StringVar(&electivesInput, "input", "", "Path to the input file")
	electivesCmd.Flags().IntVar(&electivesScenario, "scenario", 1, "Number of the scenario the electives must fit around")
	electivesCmd.MarkFlagRequired("file")
	electivesCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(electivesCmd)
}

func availableElectives(electives []model.Elective, scenarios []model.Scenario, courses []model.Course, number int) ([]model.Elective, error) {
	if number < 1 || number > len(scenarios) {
		return nil, fmt.Errorf("scenario %d does not exist, there are %d", number, len(scenarios))
	}
	occupied := model.OccupiedIntervals(scenarios[number-1], courses)
	return model.FilterAvailableElectives(electives, occupied), nil
}
