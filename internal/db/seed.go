package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SeedList is a sample todo list with its items.
type SeedList struct {
	Title string
	Items []string
}

// DefaultFixtures are the lists inserted by SeedFixtures.
var DefaultFixtures = []SeedList{
	{Title: "Groceries", Items: []string{"Milk", "Eggs", "Bread"}},
	{Title: "Chores", Items: []string{"Laundry", "Dishes"}},
}

// SeedFixtures inserts sample lists and items. Items have no HTTP create
// endpoint, so this is how a development database gets something to check.
// Returns the IDs of the created lists in insertion order.
func SeedFixtures(ctx context.Context, database *sql.DB, d Dialect, fixtures []SeedList) ([]int64, error) {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var ids []int64
	for _, list := range fixtures {
		var listID int64
		err := tx.QueryRowContext(ctx,
			d.Rebind("INSERT INTO todo_list (title) VALUES (?) RETURNING id"),
			list.Title,
		).Scan(&listID)
		if err != nil {
			return nil, fmt.Errorf("seed list %q: %w", list.Title, err)
		}

		for _, item := range list.Items {
			if _, err := tx.ExecContext(ctx,
				d.Rebind("INSERT INTO todo_item (title, checked, list_id) VALUES (?, ?, ?)"),
				item, false, listID,
			); err != nil {
				return nil, fmt.Errorf("seed item %q: %w", item, err)
			}
		}

		ids = append(ids, listID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed: %w", err)
	}

	return ids, nil
}
