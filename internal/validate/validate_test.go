package validate

import (
	"testing"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/models"
)

func validEntry() *models.LedgerEntry {
	return &models.LedgerEntry{
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ItemName:    "Survey fee",
		Category:    models.CategoryExpenses,
		PaymentType: "Cash",
		CreditPaise: 0,
		DebitPaise:  50000,
	}
}

// TestLedgerEntry_CreditDebitExclusive covers all four boundary
// combinations of the credit/debit rule.
func TestLedgerEntry_CreditDebitExclusive(t *testing.T) {
	cases := []struct {
		name    string
		credit  int64
		debit   int64
		wantErr bool
	}{
		{"credit only", 10000, 0, false},
		{"debit only", 0, 10000, false},
		{"both zero", 0, 0, true},
		{"both positive", 10000, 10000, true},
	}

	for _, tc := range cases {
		e := validEntry()
		e.CreditPaise = tc.credit
		e.DebitPaise = tc.debit
		err := LedgerEntry(e)
		if tc.wantErr && err == nil {
			t.Errorf("%s: error = nil, want error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: error = %v, want nil", tc.name, err)
		}
	}
}

func TestLedgerEntry_NegativeAmounts(t *testing.T) {
	e := validEntry()
	e.CreditPaise = -100
	if err := LedgerEntry(e); err == nil || err.Reason != "negative" {
		t.Errorf("negative credit: error = %v, want reason=negative", err)
	}

	e = validEntry()
	e.DebitPaise = -1
	if err := LedgerEntry(e); err == nil || err.Reason != "negative" {
		t.Errorf("negative debit: error = %v, want reason=negative", err)
	}
}

func TestLedgerEntry_FieldRules(t *testing.T) {
	e := validEntry()
	e.ItemName = ""
	if err := LedgerEntry(e); err == nil || err.Field != "itemName" {
		t.Errorf("empty itemName: error = %v, want itemName required", err)
	}

	e = validEntry()
	e.Category = "Groceries"
	if err := LedgerEntry(e); err == nil || err.Field != "category" {
		t.Errorf("unknown category: error = %v, want category invalid", err)
	}

	e = validEntry()
	e.PaymentType = "Barter"
	if err := LedgerEntry(e); err == nil || err.Field != "paymentType" {
		t.Errorf("unknown paymentType: error = %v, want paymentType invalid", err)
	}
}

// TestMobile accepts exactly 10 ASCII digits and nothing else.
func TestMobile(t *testing.T) {
	valid := []string{"9876543210", "0000000000"}
	for _, m := range valid {
		if err := Mobile(m); err != nil {
			t.Errorf("Mobile(%q) error = %v, want nil", m, err)
		}
	}

	invalid := []string{
		"",
		"987654321",    // 9 digits
		"98765432101",  // 11 digits
		"98765a4321",   // letter
		"98765-43210",  // punctuation
		"９８７６５４３２１０", // non-ASCII digits
	}
	for _, m := range invalid {
		err := Mobile(m)
		if err == nil {
			t.Errorf("Mobile(%q) error = nil, want error", m)
			continue
		}
		if err.Field != "mobile" || err.Reason != "format" {
			t.Errorf("Mobile(%q) = {%s,%s}, want {mobile,format}", m, err.Field, err.Reason)
		}
	}
}

func validFile() *models.LandFile {
	return &models.LandFile{
		Category:      models.FileCategoryRegular,
		SurveyNumber:  "123/4A",
		District:      "Madurai",
		Taluk:         "Melur",
		Village:       "Kottampatti",
		Extent:        2.5,
		ExtentUnit:    "Acres",
		Owners:        models.OwnerList{{Name: "Raman", Mobile: "9876543210"}},
		ContactName:   "Kumar",
		ContactMobile: "9123456780",
		ProjectStatus: models.ProjectStatusNew,
	}
}

func TestLandFile_Valid(t *testing.T) {
	if err := LandFile(validFile()); err != nil {
		t.Fatalf("valid file: error = %v, want nil", err)
	}

	// empty owners list is allowed
	f := validFile()
	f.Owners = nil
	if err := LandFile(f); err != nil {
		t.Errorf("no owners: error = %v, want nil", err)
	}
}

func TestLandFile_Invalid(t *testing.T) {
	f := validFile()
	f.Category = "Commercial"
	if err := LandFile(f); err == nil || err.Field != "category" {
		t.Errorf("bad category: error = %v, want category invalid", err)
	}

	f = validFile()
	f.SurveyNumber = ""
	if err := LandFile(f); err == nil || err.Field != "surveyNumber" {
		t.Errorf("empty surveyNumber: error = %v, want required", err)
	}

	f = validFile()
	f.Extent = -0.1
	if err := LandFile(f); err == nil || err.Field != "extent" {
		t.Errorf("negative extent: error = %v, want extent negative", err)
	}

	f = validFile()
	f.ExtentUnit = "Bigha"
	if err := LandFile(f); err == nil || err.Field != "extentUnit" {
		t.Errorf("bad extentUnit: error = %v, want invalid", err)
	}

	f = validFile()
	f.Owners = models.OwnerList{{Name: "Raman", Mobile: "12345"}}
	if err := LandFile(f); err == nil || err.Field != "mobile" {
		t.Errorf("bad owner mobile: error = %v, want mobile format", err)
	}

	f = validFile()
	f.FileStatus = "Lost"
	if err := LandFile(f); err == nil || err.Field != "fileStatus" {
		t.Errorf("bad fileStatus: error = %v, want invalid", err)
	}
}

func TestLandFile_SubStatusEmptyAllowed(t *testing.T) {
	f := validFile()
	f.FileStatus = ""
	f.DwgStatus = ""
	f.FormsStatus = ""
	f.OnlineStatus = ""
	if err := LandFile(f); err != nil {
		t.Errorf("unset sub-statuses: error = %v, want nil", err)
	}
}

func TestDocument(t *testing.T) {
	d := &models.Document{Category: models.DocCategoryCompany, OriginalName: "deed.pdf"}
	if err := Document(d); err != nil {
		t.Fatalf("valid document: error = %v, want nil", err)
	}

	d = &models.Document{OriginalName: "deed.pdf"}
	if err := Document(d); err == nil || err.Reason != "required" {
		t.Errorf("missing category: error = %v, want required", err)
	}

	d = &models.Document{Category: "personal", OriginalName: "deed.pdf"}
	if err := Document(d); err == nil || err.Reason != "invalid" {
		t.Errorf("unknown category: error = %v, want invalid", err)
	}
}
