package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restock/restock/internal/cli"
	"github.com/restock/restock/internal/engine"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [item]",
		Short: "Analyze purchase and consumption patterns",
		Long: `Analyze the household's purchase and consumption history.

Without arguments, analyzes every frequently purchased item and prints a
table sorted by urgency. With an item name, shows the detailed prediction
for that item, computing it on demand when needed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store)
	user := currentUser()

	if len(args) == 1 {
		prediction, err := eng.ItemInsight(ctx, user, args[0])
		if err != nil {
			return err
		}
		if prediction == nil {
			fmt.Println(cli.FormatError(fmt.Sprintf("no active stock or not enough history for %q", args[0])))
			return nil
		}
		fmt.Println(cli.RenderPrediction(prediction))
		return nil
	}

	analyses, err := eng.AnalyzeHousehold(ctx, user)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Household pattern analysis"))
	fmt.Println(cli.RenderAnalyses(analyses))
	return nil
}
