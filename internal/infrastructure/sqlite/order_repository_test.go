package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/minimart/pos-simulator/internal/domain/order"
)

func newOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.New(id,
		[]order.Line{
			{ProductID: "QWE", ProductName: "Paper", UnitPrice: decimal.RequireFromString("20.50"), Quantity: 2},
			{ProductID: "ASD", ProductName: "Pencil", UnitPrice: decimal.RequireFromString("10.45"), Quantity: 1},
		},
		"Cash",
		decimal.RequireFromString("51.45"),
	)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	return o
}

func TestSaveAndList(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	want := newOrder(t, 1)
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 order, got %d", len(got))
	}
	o := got[0]
	if o.ID != want.ID || o.Reference != want.Reference || o.PaymentMethod != "Cash" {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !o.Total.Equal(want.Total) {
		t.Fatalf("expected total %s, got %s", want.Total, o.Total)
	}
	if len(o.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(o.Lines))
	}
	if o.Lines[0].ProductID != "QWE" || o.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected first line: %+v", o.Lines[0])
	}
	if !o.Lines[1].UnitPrice.Equal(decimal.RequireFromString("10.45")) {
		t.Fatalf("unexpected second line price: %s", o.Lines[1].UnitPrice)
	}
}

func TestListOrderedByID(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	for _, id := range []int64{2, 1, 3} {
		if err := repo.Save(ctx, newOrder(t, id)); err != nil {
			t.Fatalf("save %d: %v", id, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestArchiveSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")
	ctx := context.Background()

	repo, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.Save(ctx, newOrder(t, 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("list after reopen: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected archived order to survive reopen, got %+v", got)
	}
}

func TestSaveRejectsDuplicateID(t *testing.T) {
	repo, err := Open(filepath.Join(t.TempDir(), "orders.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	if err := repo.Save(ctx, newOrder(t, 1)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, newOrder(t, 1)); err == nil {
		t.Fatalf("expected duplicate id to be rejected")
	}
}
