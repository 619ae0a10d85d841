// Package stats derives summary figures from already-fetched,
// already-owner-filtered entity sets. It never queries storage.
package stats

import "github.com/REVSSPACE/mclp-backend/internal/models"

// CategoryTotals is the credit/debit sub-total for one ledger category,
// in paise.
type CategoryTotals struct {
	CreditPaise int64
	DebitPaise  int64
}

// LedgerSummary holds overall and per-category ledger totals in paise.
// Categories absent from the input produce no key.
type LedgerSummary struct {
	TotalCreditPaise int64
	TotalDebitPaise  int64
	BalancePaise     int64
	ByCategory       map[string]CategoryTotals
}

// SummarizeLedger sums credit and debit across entries. The result is
// order-independent and all-zero for an empty input.
func SummarizeLedger(entries []models.LedgerEntry) LedgerSummary {
	s := LedgerSummary{ByCategory: make(map[string]CategoryTotals, 8)}
	for i := range entries {
		e := &entries[i]
		s.TotalCreditPaise += e.CreditPaise
		s.TotalDebitPaise += e.DebitPaise

		ct := s.ByCategory[e.Category]
		ct.CreditPaise += e.CreditPaise
		ct.DebitPaise += e.DebitPaise
		s.ByCategory[e.Category] = ct
	}
	s.BalancePaise = s.TotalCreditPaise - s.TotalDebitPaise
	return s
}

// FileDashboard holds the project counts shown on the dashboard.
type FileDashboard struct {
	TotalFiles        int `json:"totalFiles"`
	NewProjects       int `json:"newProjects"`
	HandlingProjects  int `json:"handlingProjects"`
	CompletedProjects int `json:"completedProjects"`
}

// SummarizeFiles counts files by project status. Statuses outside the
// three named buckets (e.g. hold) count toward the total only.
func SummarizeFiles(files []models.LandFile) FileDashboard {
	d := FileDashboard{TotalFiles: len(files)}
	for i := range files {
		switch files[i].ProjectStatus {
		case models.ProjectStatusNew:
			d.NewProjects++
		case models.ProjectStatusHandling:
			d.HandlingProjects++
		case models.ProjectStatusCompleted:
			d.CompletedProjects++
		}
	}
	return d
}
