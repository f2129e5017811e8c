package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/ldaviz/prepare"
	"github.com/spf13/cobra"
)

func newPrepareCommand() *cobra.Command {
	var (
		inputFlag      string
		outputFlag     string
		numTermsFlag   int
		lambdaStepFlag float64
		jobsFlag       int
		prettyFlag     bool
	)

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Run the transformation and write the client payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := loadModelFile(inputFlag)
			if err != nil {
				return err
			}

			data, err := prepare.Prepare(model, &prepare.Options{
				R:          numTermsFlag,
				LambdaStep: lambdaStepFlag,
				NumJobs:    jobsFlag,
			})
			if err != nil {
				return err
			}

			var payload []byte
			if prettyFlag {
				payload, err = json.MarshalIndent(data.ToMap(), "", "  ")
			} else {
				payload, err = data.ToJSON()
			}
			if err != nil {
				return fmt.Errorf("encode payload: %w", err)
			}

			if outputFlag == "" || outputFlag == "-" {
				_, err = cmd.OutOrStdout().Write(append(payload, '\n'))
				return err
			}
			if err := os.WriteFile(outputFlag, payload, 0o644); err != nil {
				return fmt.Errorf("write payload: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d topics, %d term rows)\n",
				outputFlag, len(data.TopicCoordinates), len(data.TopicInfo))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Model artifact JSON file (required)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "-", "Output file, or - for stdout")
	cmd.Flags().IntVar(&numTermsFlag, "num-terms", prepare.DefaultR, "Terms shown per topic")
	cmd.Flags().Float64Var(&lambdaStepFlag, "lambda-step", prepare.DefaultLambdaStep, "Relevance sweep step in (0,1]")
	cmd.Flags().IntVar(&jobsFlag, "jobs", prepare.DefaultNumJobs, "Sweep chunks; negative means NumCPU+1+jobs")
	cmd.Flags().BoolVar(&prettyFlag, "pretty", false, "Indent the JSON payload")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
