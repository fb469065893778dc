package domain

import "github.com/shopspring/decimal"

// CollectionWindow is the collected totals within one time window.
type CollectionWindow struct {
	Gold  decimal.Decimal `json:"gold"`
	Cash  decimal.Decimal `json:"cash"`
	Count int             `json:"count"`
}

// CollectionStats partitions a salesperson's collections into all-time, today
// (local midnight boundary) and this-week (Sunday local midnight) windows.
// It is a pure fold over the collection rows, recomputed on every call.
type CollectionStats struct {
	Total CollectionWindow `json:"total"`
	Today CollectionWindow `json:"today"`
	Week  CollectionWindow `json:"week"`
}

// SalespersonCollectionStats is one salesperson's line in the admin stats view.
type SalespersonCollectionStats struct {
	SalesPersonID   string           `json:"salesPersonID"`
	SalesPersonName string           `json:"salesPersonName"`
	Total           CollectionWindow `json:"total"`
	Today           CollectionWindow `json:"today"`
}

// DashboardStats is the role-scoped dashboard rollup.
type DashboardStats struct {
	TotalCustomers    int             `json:"totalCustomers"`
	TotalGoldDebt     decimal.Decimal `json:"totalGoldDebt"`
	TotalCashDebt     decimal.Decimal `json:"totalCashDebt"`
	WeekGoldCollected decimal.Decimal `json:"weekGoldCollected"`
	WeekCashCollected decimal.Decimal `json:"weekCashCollected"`
}

// SalesRollup is one group-by row of the sales report, keyed by branch label
// or salesperson label depending on the grouping requested.
type SalesRollup struct {
	Key         string          `json:"key"`
	Gold18Star  decimal.Decimal `json:"gold18Star"`
	Gold18Plain decimal.Decimal `json:"gold18Plain"`
	Gold21Plain decimal.Decimal `json:"gold21Plain"`
	Gold21Star  decimal.Decimal `json:"gold21Star"`
	TotalSales  decimal.Decimal `json:"totalSales"`
}
