package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/ldaviz/prepare"
	"github.com/spf13/cobra"
)

func newTopicsCommand() *cobra.Command {
	var (
		inputFlag    string
		lambdaFlag   float64
		numTermsFlag int
	)

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Print each topic's top terms at a chosen relevance weight",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lambdaFlag < 0 || lambdaFlag > 1 {
				return fmt.Errorf("lambda must lie in [0,1], got %g", lambdaFlag)
			}

			model, err := loadModelFile(inputFlag)
			if err != nil {
				return err
			}
			data, err := prepare.Prepare(model, &prepare.Options{R: numTermsFlag})
			if err != nil {
				return err
			}

			rows := topTermRows(data, lambdaFlag, numTermsFlag)
			out := renderTable(
				[]string{"Topic", "Share", "Top terms"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Model artifact JSON file (required)")
	cmd.Flags().Float64Var(&lambdaFlag, "lambda", 0.6, "Relevance weight in [0,1]")
	cmd.Flags().IntVar(&numTermsFlag, "num-terms", 10, "Terms shown per topic")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// topTermRows ranks each topic's retained terms by relevance at the given λ,
// exactly the reordering the client slider performs on the payload.
func topTermRows(data *prepare.PreparedData, lambda float64, limit int) [][]string {
	type scored struct {
		term  string
		score float64
	}
	perTopic := make(map[string][]scored)
	for _, r := range data.TopicInfo {
		if r.Category == "Default" {
			continue
		}
		perTopic[r.Category] = append(perTopic[r.Category], scored{
			term:  r.Term,
			score: lambda*r.LogProb + (1-lambda)*r.LogLift,
		})
	}

	rows := make([][]string, 0, len(data.TopicCoordinates))
	for _, c := range data.TopicCoordinates {
		terms := perTopic[fmt.Sprintf("Topic%d", c.Topic)]
		sort.SliceStable(terms, func(a, b int) bool { return terms[a].score > terms[b].score })
		if len(terms) > limit {
			terms = terms[:limit]
		}
		labels := make([]string, len(terms))
		for i, s := range terms {
			labels[i] = s.term
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Topic),
			fmt.Sprintf("%.1f%%", c.Freq),
			strings.Join(labels, " "),
		})
	}

	return rows
}
