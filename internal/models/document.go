package models

import "time"

// Document categories.
const (
	DocCategoryCompany   = "company"
	DocCategoryGovtGOs   = "govt-gos"
	DocCategoryGovtDocs  = "govt-docs"
	DocCategoryTemplates = "templates"
)

// Document is the metadata record of one uploaded file. Its lifecycle is
// tied 1:1 to the blob at StoragePath: the blob exists before the record
// is created, and deleting the record deletes the blob.
type Document struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID      uint      `gorm:"index;not null" json:"-"`
	StoredName   string    `gorm:"size:128;not null" json:"storedName"`
	OriginalName string    `gorm:"size:255;not null" json:"originalName"`
	StoragePath  string    `gorm:"size:512;not null" json:"-"`
	SizeBytes    int64     `gorm:"not null" json:"sizeBytes"`
	MimeType     string    `gorm:"size:128;not null" json:"mimeType"`
	Category     string    `gorm:"size:32;index;not null" json:"category"`
	UploadedAt   time.Time `gorm:"index;autoCreateTime" json:"uploadedAt"`
}

// Stamp assigns identity and ownership before the record is persisted.
func (d *Document) Stamp(id string, owner uint) {
	d.ID = id
	d.OwnerID = owner
}
