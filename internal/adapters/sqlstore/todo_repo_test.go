package sqlstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/todod/internal/adapters/sqlstore"
	"github.com/example/todod/internal/ports/secondary"
)

func TestCreateTodo(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	created, err := sqlstore.CreateTodo(ctx, testDB, "Groceries")
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if created.Title != "Groceries" {
		t.Errorf("expected title 'Groceries', got '%s'", created.Title)
	}
	if created.ID <= 0 {
		t.Errorf("expected positive ID, got %d", created.ID)
	}
}

func TestCreateTodo_IDsAreUnique(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	seen := make(map[int64]bool)
	for _, title := range []string{"A", "B", "C", "A"} {
		created, err := sqlstore.CreateTodo(ctx, testDB, title)
		if err != nil {
			t.Fatalf("CreateTodo(%s) failed: %v", title, err)
		}
		if seen[created.ID] {
			t.Errorf("ID %d returned twice", created.ID)
		}
		seen[created.ID] = true
	}
}

func TestCreateTodo_TitleIsBoundNotInterpolated(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	title := "x'); DROP TABLE todo_list; --"
	created, err := sqlstore.CreateTodo(ctx, testDB, title)
	if err != nil {
		t.Fatalf("CreateTodo failed: %v", err)
	}
	if created.Title != title {
		t.Errorf("expected title stored verbatim, got '%s'", created.Title)
	}

	todos, err := sqlstore.GetTodos(ctx, testDB)
	if err != nil {
		t.Fatalf("GetTodos failed after hostile title: %v", err)
	}
	if len(todos) != 1 {
		t.Errorf("expected 1 todo list, got %d", len(todos))
	}
}

func TestGetTodos_Empty(t *testing.T) {
	testDB := setupTestDB(t)

	todos, err := sqlstore.GetTodos(context.Background(), testDB)
	if err != nil {
		t.Fatalf("GetTodos failed: %v", err)
	}
	if todos == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(todos) != 0 {
		t.Errorf("expected 0 todo lists, got %d", len(todos))
	}
}

func TestGetTodos_NewestFirst(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	a, err := sqlstore.CreateTodo(ctx, testDB, "A")
	if err != nil {
		t.Fatalf("CreateTodo(A) failed: %v", err)
	}
	b, err := sqlstore.CreateTodo(ctx, testDB, "B")
	if err != nil {
		t.Fatalf("CreateTodo(B) failed: %v", err)
	}

	todos, err := sqlstore.GetTodos(ctx, testDB)
	if err != nil {
		t.Fatalf("GetTodos failed: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 todo lists, got %d", len(todos))
	}
	if todos[0].ID != b.ID {
		t.Errorf("expected newest list %d first, got %d", b.ID, todos[0].ID)
	}
	if todos[1].ID != a.ID || todos[1].Title != "A" {
		t.Errorf("expected list A second, got %+v", todos[1])
	}
}

func TestGetItems(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	listID := seedList(t, testDB, "Groceries")
	otherID := seedList(t, testDB, "Chores")
	milk := seedItem(t, testDB, listID, "Milk")
	eggs := seedItem(t, testDB, listID, "Eggs")
	seedItem(t, testDB, otherID, "Laundry")

	if err := sqlstore.CheckItem(ctx, testDB, listID, eggs); err != nil {
		t.Fatalf("CheckItem failed: %v", err)
	}

	items, err := sqlstore.GetItems(ctx, testDB, listID)
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].ID != milk || items[0].Title != "Milk" || items[0].Checked || items[0].ListID != listID {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].ID != eggs || !items[1].Checked {
		t.Errorf("expected second item to be checked eggs, got %+v", items[1])
	}
}

func TestGetItems_UnknownListIsEmpty(t *testing.T) {
	testDB := setupTestDB(t)

	items, err := sqlstore.GetItems(context.Background(), testDB, 999)
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty slice, got %v", items)
	}
}

func TestCheckItem_OnlyOnce(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	listID := seedList(t, testDB, "")
	itemID := seedItem(t, testDB, listID, "")

	if err := sqlstore.CheckItem(ctx, testDB, listID, itemID); err != nil {
		t.Fatalf("first CheckItem failed: %v", err)
	}
	if !isChecked(t, testDB, itemID) {
		t.Error("expected item to be checked")
	}

	err := sqlstore.CheckItem(ctx, testDB, listID, itemID)
	if !errors.Is(err, secondary.ErrNotApplicable) {
		t.Errorf("expected ErrNotApplicable on second check, got %v", err)
	}
}

func TestCheckItem_NotApplicable(t *testing.T) {
	testDB := setupTestDB(t)
	ctx := context.Background()

	listID := seedList(t, testDB, "Groceries")
	otherID := seedList(t, testDB, "Chores")
	itemID := seedItem(t, testDB, listID, "Milk")

	tests := []struct {
		name   string
		listID int64
		itemID int64
	}{
		{"item does not exist", listID, 999},
		{"item belongs to another list", otherID, itemID},
		{"list does not exist", 999, itemID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sqlstore.CheckItem(ctx, testDB, tt.listID, tt.itemID)
			if !errors.Is(err, secondary.ErrNotApplicable) {
				t.Errorf("expected ErrNotApplicable, got %v", err)
			}
		})
	}

	if isChecked(t, testDB, itemID) {
		t.Error("expected item to stay unchecked")
	}
}
