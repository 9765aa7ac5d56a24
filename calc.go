package main

import (
	"io"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"bonus-malus/internal/engine"
	"bonus-malus/internal/model"
)

const exitCodeFailure = 2

type calcFlags struct {
	firstName string
	lastName  string
	age       int
	years     int
	accidents int
	usage     int
}

func newCalcCmd() *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute one bonus-malus score and print the JSON response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.firstName, "first-name", "", "Client first name")
	flags.StringVar(&f.lastName, "last-name", "", "Client last name")
	flags.IntVar(&f.age, "age", 0, "Client age (18-80)")
	flags.IntVar(&f.years, "driving-years", 0, "Years of driving")
	flags.IntVar(&f.accidents, "accidents", 0, "At-fault accidents in the past five years (0-2)")
	flags.IntVar(&f.usage, "usage", 0, "Usage: 0 private, 1 professional")
	return cmd
}

func runCalc(out io.Writer, f *calcFlags) error {
	resp := engine.Process(&model.CalculationRequest{
		FirstName:        f.firstName,
		LastName:         f.lastName,
		Age:              &f.age,
		DrivingYears:     &f.years,
		AccidentsAtFault: &f.accidents,
		Usage:            &f.usage,
	})

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return err
	}

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		return &exitErr{code: exitCodeFailure}
	}
	return nil
}
