package services_test

import (
	"testing"

	"tillkeeper/internal/repos"
	"tillkeeper/internal/services"
)

func TestReport_SalesSummary(t *testing.T) {
	db := memdb(t)
	lsvc := ledger(t, db)
	rsvc := services.NewReportService(repos.NewReportRepo(db), 5)

	widget, _ := lsvc.AddProduct("Widget", 20, 2.5)
	gadget, _ := lsvc.AddProduct("Gadget", 30, 4.0)
	if _, err := lsvc.AddProduct("Shelfwarmer", 99, 1.0); err != nil {
		t.Fatal(err)
	}

	mustSell(t, lsvc, widget, 3)
	mustSell(t, lsvc, gadget, 2)
	mustSell(t, lsvc, widget, 1)

	rows, err := rsvc.SalesSummary()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("products without sales must be omitted, got %+v", rows)
	}
	// stable order by product id
	if rows[0].ProductName != "Widget" || rows[0].TotalQty != 4 || rows[0].TotalAmount != 10.0 {
		t.Fatalf("bad Widget row: %+v", rows[0])
	}
	if rows[1].ProductName != "Gadget" || rows[1].TotalQty != 2 || rows[1].TotalAmount != 8.0 {
		t.Fatalf("bad Gadget row: %+v", rows[1])
	}
}

func TestReport_TopFastMovers_OrderTiesAndLimit(t *testing.T) {
	db := memdb(t)
	lsvc := ledger(t, db)
	rsvc := services.NewReportService(repos.NewReportRepo(db), 5)

	// ids assigned in insertion order: A=1 .. F=6
	sold := []struct {
		name string
		qty  int
	}{
		{"A", 10}, {"B", 30}, {"C", 5}, {"D", 30}, {"E", 1}, {"F", 20},
	}
	for _, s := range sold {
		id, err := lsvc.AddProduct(s.name, 100, 1.0)
		if err != nil {
			t.Fatal(err)
		}
		mustSell(t, lsvc, id, s.qty)
	}

	rows, err := rsvc.TopFastMovers(5)
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		name string
		qty  int
	}{
		{"B", 30}, {"D", 30}, {"F", 20}, {"A", 10}, {"C", 5},
	}
	if len(rows) != len(want) {
		t.Fatalf("want %d rows, got %+v", len(want), rows)
	}
	for i, w := range want {
		if rows[i].ProductName != w.name || rows[i].TotalQty != w.qty {
			t.Fatalf("row %d: want %s(%d), got %+v", i, w.name, w.qty, rows[i])
		}
	}
}

func TestReport_TopFastMovers_FewerThanLimit(t *testing.T) {
	db := memdb(t)
	lsvc := ledger(t, db)
	rsvc := services.NewReportService(repos.NewReportRepo(db), 5)

	id, _ := lsvc.AddProduct("Widget", 10, 1.0)
	mustSell(t, lsvc, id, 2)

	rows, err := rsvc.TopFastMovers(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ProductName != "Widget" || rows[0].TotalQty != 2 {
		t.Fatalf("want the single seller, got %+v", rows)
	}
}

func TestReport_TopFastMovers_DefaultLimit(t *testing.T) {
	db := memdb(t)
	lsvc := ledger(t, db)
	rsvc := services.NewReportService(repos.NewReportRepo(db), 2)

	for _, name := range []string{"A", "B", "C"} {
		id, _ := lsvc.AddProduct(name, 10, 1.0)
		mustSell(t, lsvc, id, 1)
	}

	rows, err := rsvc.TopFastMovers(0) // falls back to configured default
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows from default limit, got %+v", rows)
	}
}

func mustSell(t *testing.T, svc *services.LedgerService, id int64, qty int) {
	t.Helper()
	if _, err := svc.Sell(id, qty); err != nil {
		t.Fatal(err)
	}
}
