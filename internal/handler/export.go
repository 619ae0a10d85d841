package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/middleware"
	"github.com/REVSSPACE/mclp-backend/internal/models"
	"github.com/REVSSPACE/mclp-backend/internal/repository"
	"github.com/REVSSPACE/mclp-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler writes the caller's full ledger as CSV or XLSX.
type ExportHandler struct {
	Repo *repository.Repository[models.LedgerEntry, *models.LedgerEntry]
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{
		Repo: repository.New[models.LedgerEntry](db, "date"),
	}
}

var exportHeaders = []string{"Date", "Item", "Category", "Payment Type", "Credit", "Debit", "Description"}

func exportRow(e *models.LedgerEntry) []string {
	return []string{
		e.Date.Format("2006-01-02"),
		e.ItemName,
		e.Category,
		e.PaymentType,
		strconv.FormatFloat(util.PaiseToRupees(e.CreditPaise), 'f', 2, 64),
		strconv.FormatFloat(util.PaiseToRupees(e.DebitPaise), 'f', 2, 64),
		e.Description,
	}
}

// CSV streams the ledger as a CSV attachment.
func (h *ExportHandler) CSV(c *gin.Context) {
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

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	_ = writer.Write(exportHeaders)
	for i := range entries {
		_ = writer.Write(exportRow(&entries[i]))
	}
}

// XLSX writes the ledger as an Excel workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
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

	f := excelize.NewFile()
	sheetName := "Ledger"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create worksheet")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}

	for idx := range entries {
		row := idx + 2
		for col, value := range exportRow(&entries[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "D", 16)
	f.SetColWidth(sheetName, "E", "F", 12)
	f.SetColWidth(sheetName, "G", "G", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to write workbook")
	}
}
