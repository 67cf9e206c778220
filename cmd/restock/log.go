package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/restock/restock/internal/cli"
	"github.com/restock/restock/internal/model"
)

func logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <item>",
		Short: "Log a purchase and add it to the inventory",
		Long: `Record that an item was bought. Writes a purchase log entry (which
feeds the cadence analysis) and an active inventory row for the stock.`,
		Args: cobra.ExactArgs(1),
		RunE: runLog,
	}

	categories := model.KnownCategories()
	sort.Strings(categories)

	cmd.Flags().Float64P("quantity", "q", 1, "quantity purchased")
	cmd.Flags().String("unit", "units", "unit of measurement (kg, liters, pieces, ...)")
	cmd.Flags().StringP("category", "c", "", "item category ("+strings.Join(categories, ", ")+")")
	cmd.Flags().String("date", "", "purchase date (YYYY-MM-DD, default today)")

	return cmd
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	itemName := args[0]

	quantity, _ := cmd.Flags().GetFloat64("quantity")
	unit, _ := cmd.Flags().GetString("unit")
	category, _ := cmd.Flags().GetString("category")
	rawDate, _ := cmd.Flags().GetString("date")

	if category == "" {
		category = "default"
	}

	purchaseDate := time.Now()
	if rawDate != "" {
		parsed, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", rawDate, err)
		}
		purchaseDate = parsed
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	user := currentUser()

	item := &model.InventoryItem{
		UserID:    user,
		ItemName:  itemName,
		Category:  category,
		Quantity:  quantity,
		Unit:      unit,
		AddedDate: purchaseDate,
		Status:    model.StatusActive,
	}
	if err := store.AddInventoryItem(ctx, item); err != nil {
		return err
	}

	record := &model.PurchaseRecord{
		UserID:       user,
		ItemName:     itemName,
		Category:     category,
		Quantity:     quantity,
		Unit:         unit,
		PurchaseDate: purchaseDate,
		InventoryID:  item.ID,
	}
	if err := store.AddPurchase(ctx, record); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged %.1f %s of %s", quantity, unit, itemName)))
	return nil
}
