package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restock/restock/internal/cli"
	"github.com/restock/restock/internal/engine"
	"github.com/restock/restock/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build the predictive shopping list",
		Long: `Build a shopping list from the household's consumption patterns,
grouped into urgent / this week / later with a reason per item.`,
		RunE: runList,
	}

	cmd.Flags().String("urgency", "", "only show one tier (urgent, this_week, later)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var filter *model.UrgencyLevel
	if raw, err := cmd.Flags().GetString("urgency"); err == nil && raw != "" {
		urgency := model.UrgencyLevel(raw)
		if !urgency.Valid() {
			return fmt.Errorf("invalid urgency %q (want urgent, this_week, or later)", raw)
		}
		filter = &urgency
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	eng := engine.New(store)

	list, err := eng.BuildShoppingList(ctx, currentUser(), filter)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Shopping list"))
	fmt.Print(cli.RenderShoppingList(list))
	return nil
}
