package handler

import (
	"net/http"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/middleware"
	"github.com/REVSSPACE/mclp-backend/internal/models"
	"github.com/REVSSPACE/mclp-backend/internal/repository"
	"github.com/REVSSPACE/mclp-backend/internal/stats"
	"github.com/REVSSPACE/mclp-backend/internal/util"
	"github.com/REVSSPACE/mclp-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AccountHandler serves the financial ledger endpoints.
type AccountHandler struct {
	Repo *repository.Repository[models.LedgerEntry, *models.LedgerEntry]
}

func NewAccountHandler(db *gorm.DB) *AccountHandler {
	return &AccountHandler{
		Repo: repository.New[models.LedgerEntry](db, "date"),
	}
}

// ---------- request/response shapes ----------

type entryCreateReq struct {
	Date        string  `json:"date" binding:"required"`
	ItemName    string  `json:"itemName" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	PaymentType string  `json:"paymentType" binding:"required"`
	Credit      float64 `json:"credit"`
	Debit       float64 `json:"debit"`
	Description string  `json:"description"`
}

type entryUpdateReq struct {
	Date        *string  `json:"date"`
	ItemName    *string  `json:"itemName"`
	Category    *string  `json:"category"`
	PaymentType *string  `json:"paymentType"`
	Credit      *float64 `json:"credit"`
	Debit       *float64 `json:"debit"`
	Description *string  `json:"description"`
}

type entryResp struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	ItemName    string    `json:"itemName"`
	Category    string    `json:"category"`
	PaymentType string    `json:"paymentType"`
	Credit      float64   `json:"credit"`
	Debit       float64   `json:"debit"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toEntryResp(e *models.LedgerEntry) entryResp {
	return entryResp{
		ID:          e.ID,
		Date:        e.Date,
		ItemName:    e.ItemName,
		Category:    e.Category,
		PaymentType: e.PaymentType,
		Credit:      util.PaiseToRupees(e.CreditPaise),
		Debit:       util.PaiseToRupees(e.DebitPaise),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func toEntryResps(entries []models.LedgerEntry) []entryResp {
	out := make([]entryResp, 0, len(entries))
	for i := range entries {
		out = append(out, toEntryResp(&entries[i]))
	}
	return out
}

func summaryBody(s stats.LedgerSummary) util.Response {
	breakdown := make(map[string]gin.H, len(s.ByCategory))
	for cat, t := range s.ByCategory {
		breakdown[cat] = gin.H{
			"credit": util.PaiseToRupees(t.CreditPaise),
			"debit":  util.PaiseToRupees(t.DebitPaise),
		}
	}
	return util.Response{
		"totalCredit":       util.PaiseToRupees(s.TotalCreditPaise),
		"totalDebit":        util.PaiseToRupees(s.TotalDebitPaise),
		"balance":           util.PaiseToRupees(s.BalancePaise),
		"categoryBreakdown": breakdown,
	}
}

// ---------- endpoints ----------

// List returns the caller's entries, optionally filtered by category and
// date range, newest first, together with a summary of the filtered set.
func (h *AccountHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var scopes []repository.Scope
	if category := c.Query("category"); category != "" {
		scopes = append(scopes, repository.Where("category", category))
	}
	if startStr := c.Query("startDate"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
			return
		}
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("date >= ?", start)
		})
	}
	if endStr := c.Query("endDate"); endStr != "" {
		end, err := parseDate(endStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
			return
		}
		// inclusive end of day
		end = end.Add(24 * time.Hour)
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("date < ?", end)
		})
	}

	entries, err := h.Repo.List(user.ID, "", scopes...)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	s := stats.SummarizeLedger(entries)
	util.OK(c, util.Response{
		"count": len(entries),
		"summary": gin.H{
			"totalCredit": util.PaiseToRupees(s.TotalCreditPaise),
			"totalDebit":  util.PaiseToRupees(s.TotalDebitPaise),
			"balance":     util.PaiseToRupees(s.BalancePaise),
		},
		"data": toEntryResps(entries),
	})
}

// Get returns one entry by id.
func (h *AccountHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	entry, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "Account entry not found")
		return
	}
	util.OK(c, util.Response{"data": toEntryResp(entry)})
}

// Create validates and stores a new entry for the caller.
func (h *AccountHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req entryCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	entry := models.LedgerEntry{
		Date:        date,
		ItemName:    req.ItemName,
		Category:    req.Category,
		PaymentType: req.PaymentType,
		CreditPaise: util.RupeesToPaise(req.Credit),
		DebitPaise:  util.RupeesToPaise(req.Debit),
		Description: req.Description,
	}
	if verr := validate.LedgerEntry(&entry); verr != nil {
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Create(user.ID, &entry); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.Created(c, util.Response{"data": toEntryResp(&entry)})
}

// Update applies a partial payload to an existing entry: absent fields
// keep their value, present fields overwrite, and the merged result is
// re-validated before it is persisted.
func (h *AccountHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req entryUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "Account entry not found")
		return
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		entry.Date = date
	}
	if req.ItemName != nil {
		entry.ItemName = *req.ItemName
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.PaymentType != nil {
		entry.PaymentType = *req.PaymentType
	}
	if req.Credit != nil {
		entry.CreditPaise = util.RupeesToPaise(*req.Credit)
	}
	if req.Debit != nil {
		entry.DebitPaise = util.RupeesToPaise(*req.Debit)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}

	if verr := validate.LedgerEntry(entry); verr != nil {
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Update(entry); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"data": toEntryResp(entry)})
}

// Delete removes one entry by id.
func (h *AccountHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Repo.Delete(user.ID, c.Param("id")); err != nil {
		storeError(c, err, "Account entry not found")
		return
	}
	util.OK(c, util.Response{"message": "Account entry deleted successfully"})
}

// Summary returns totals and the per-category breakdown over the
// caller's full ledger.
func (h *AccountHandler) Summary(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	entries, err := h.Repo.List(user.ID, "")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"data": summaryBody(stats.SummarizeLedger(entries))})
}
