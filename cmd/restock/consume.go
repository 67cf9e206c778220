package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/restock/restock/internal/cli"
	"github.com/restock/restock/internal/common"
	"github.com/restock/restock/internal/model"
)

func consumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consume <item>",
		Short: "Mark an item as used up",
		Long: `Record that the active stock of an item was finished. Marks the
inventory row consumed and writes a consumption log entry, which feeds
the consumption-rate analysis.`,
		Args: cobra.ExactArgs(1),
		RunE: runConsume,
	}

	cmd.Flags().String("status", "consumed", "final status (consumed, expired, discarded)")

	return cmd
}

func runConsume(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	itemName := args[0]

	rawStatus, _ := cmd.Flags().GetString("status")
	status := model.ItemStatus(rawStatus)
	if !status.Valid() || status == model.StatusActive {
		return fmt.Errorf("invalid status %q (want consumed, expired, or discarded)", rawStatus)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user := currentUser()

	item, err := store.GetActiveItem(ctx, user, itemName)
	if err != nil {
		return err
	}
	if item == nil {
		return common.NewUserError(fmt.Sprintf("no active stock of %q", itemName), nil)
	}

	if err := store.UpdateInventoryStatus(ctx, user, item.ID, status); err != nil {
		return err
	}

	record := model.NewConsumptionRecord(
		user, item.ItemName, item.Category, item.Unit,
		item.Quantity, item.AddedDate, time.Now(),
	)
	record.InventoryID = item.ID
	if err := store.AddConsumption(ctx, &record); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s finished after %d days", item.ItemName, record.DaysLasted)))
	return nil
}
