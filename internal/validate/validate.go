// Package validate holds the business-rule validation for every entity
// kind. It is pure: it never touches storage, so the rules can be tested
// without a database.
package validate

import (
	"fmt"
	"regexp"

	"github.com/REVSSPACE/mclp-backend/internal/models"
)

// ValidationError names the offending field and the reason it was
// rejected. Reason is a short machine-readable token; Message is what the
// API returns.
type ValidationError struct {
	Field   string
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func errRequired(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "required", Message: field + " is required"}
}

func errInvalid(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "invalid", Message: "invalid value for " + field}
}

// Closed enum sets per entity kind.
var (
	LedgerCategories = stringSet(
		models.CategoryRevenue, models.CategoryExpenses, models.CategoryAssets,
		models.CategoryLiabilities, models.CategoryCapital, models.CategoryInvestments,
		models.CategoryOperational, models.CategoryAdministrative,
	)
	PaymentTypes = stringSet(
		"Cash", "BankTransfer", "Cheque", "OnlinePayment", "CreditCard", "Other",
	)
	FileCategories = stringSet(
		models.FileCategoryRegular, models.FileCategoryUnapproved, models.FileCategoryLandUse,
		models.FileCategoryMisc, models.FileCategorySinglePlot, models.FileCategoryRERA,
	)
	ExtentUnits = stringSet(
		"Acres", "Hectares", "SqFt", "SqYards", "Cents",
	)
	ProjectStatuses = stringSet(
		models.ProjectStatusNew, models.ProjectStatusHandling,
		models.ProjectStatusHold, models.ProjectStatusCompleted,
	)
	DocumentCategories = stringSet(
		models.DocCategoryCompany, models.DocCategoryGovtGOs,
		models.DocCategoryGovtDocs, models.DocCategoryTemplates,
	)

	// Sub-workflow sets; empty string means unset and is always allowed.
	FileStatuses = stringSet(
		"", "In Progress", "DTCP In Progress", "Client In Progress",
		"Documentation", "Approval Pending",
	)
	DwgStatuses = stringSet(
		"", "Not Started", "In Progress", "Completed", "Under Review", "Approved",
	)
	FormsStatuses = stringSet(
		"", "Not Started", "In Progress", "Partially Completed", "Completed",
		"Submitted", "Approved",
	)
	OnlineStatuses = stringSet(
		"", "Not Started", "Preparing Documents", "Ready to Upload",
		"Uploading", "Uploaded", "Under Verification", "Verified",
	)
)

func stringSet(values ...string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

var mobileRe = regexp.MustCompile(`^[0-9]{10}$`)

// Mobile checks for exactly 10 ASCII digits.
func Mobile(s string) *ValidationError {
	if !mobileRe.MatchString(s) {
		return &ValidationError{Field: "mobile", Reason: "format",
			Message: "please enter a valid 10-digit mobile number"}
	}
	return nil
}

// LedgerEntry checks per-field constraints, then the cross-field rule:
// exactly one of credit/debit must be strictly positive, the other zero.
func LedgerEntry(e *models.LedgerEntry) *ValidationError {
	if e.Date.IsZero() {
		return errRequired("date")
	}
	if e.ItemName == "" {
		return errRequired("itemName")
	}
	if !LedgerCategories[e.Category] {
		return errInvalid("category")
	}
	if !PaymentTypes[e.PaymentType] {
		return errInvalid("paymentType")
	}
	if e.CreditPaise < 0 {
		return &ValidationError{Field: "credit", Reason: "negative", Message: "credit cannot be negative"}
	}
	if e.DebitPaise < 0 {
		return &ValidationError{Field: "debit", Reason: "negative", Message: "debit cannot be negative"}
	}
	if (e.CreditPaise > 0) == (e.DebitPaise > 0) {
		return &ValidationError{Field: "credit", Reason: "exclusive",
			Message: "either credit or debit must be greater than 0, but not both"}
	}
	return nil
}

// LandFile checks a fully merged land file record.
func LandFile(f *models.LandFile) *ValidationError {
	if !FileCategories[f.Category] {
		return errInvalid("category")
	}
	if f.SurveyNumber == "" {
		return errRequired("surveyNumber")
	}
	if f.District == "" {
		return errRequired("district")
	}
	if f.Taluk == "" {
		return errRequired("taluk")
	}
	if f.Village == "" {
		return errRequired("village")
	}
	if f.Extent < 0 {
		return &ValidationError{Field: "extent", Reason: "negative", Message: "extent cannot be negative"}
	}
	if !ExtentUnits[f.ExtentUnit] {
		return errInvalid("extentUnit")
	}
	for _, owner := range f.Owners {
		if owner.Name == "" {
			return errRequired("owners.name")
		}
		if err := Mobile(owner.Mobile); err != nil {
			return err
		}
	}
	if f.ContactName == "" {
		return errRequired("contactName")
	}
	if err := Mobile(f.ContactMobile); err != nil {
		return err
	}
	if !ProjectStatuses[f.ProjectStatus] {
		return errInvalid("projectStatus")
	}
	if !FileStatuses[f.FileStatus] {
		return errInvalid("fileStatus")
	}
	if !DwgStatuses[f.DwgStatus] {
		return errInvalid("dwgStatus")
	}
	if !FormsStatuses[f.FormsStatus] {
		return errInvalid("formsStatus")
	}
	if !OnlineStatuses[f.OnlineStatus] {
		return errInvalid("onlineStatus")
	}
	return nil
}

// Document checks an upload's metadata record.
func Document(d *models.Document) *ValidationError {
	if d.Category == "" {
		return errRequired("category")
	}
	if !DocumentCategories[d.Category] {
		return errInvalid("category")
	}
	if d.OriginalName == "" {
		return errRequired("originalName")
	}
	return nil
}
