package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/restock/restock/internal/cli"
	"github.com/restock/restock/internal/engine"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Recompute and persist predictions",
		Long: `Analyze every frequently purchased item and upsert the results into
the predictions store. With --prune, also delete predictions for items
that have not been purchased in the trailing 90 days.`,
		RunE: runSync,
	}

	cmd.Flags().Bool("prune", false, "delete predictions for items no longer purchased")
	_ = viper.BindPFlag("sync.prune", cmd.Flags().Lookup("prune"))

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store)
	user := currentUser()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan][bold]Analyzing household...[reset]"),
		progressbar.OptionSpinnerType(14),
	)

	summary, err := eng.SyncPredictions(ctx, user)
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %d predictions", summary.Saved)))
	if summary.Failed() > 0 {
		fmt.Println(cli.FormatError(fmt.Sprintf("%d items failed to save", summary.Failed())))
		for _, failure := range summary.Failures {
			fmt.Printf("  %s: %v\n", failure.ItemName, failure.Err)
		}
	}

	if viper.GetBool("sync.prune") {
		deleted, pruneErr := eng.PrunePredictions(ctx, user)
		if pruneErr != nil {
			return pruneErr
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Pruned %d stale predictions", deleted)))
	}

	return nil
}
