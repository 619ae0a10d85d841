package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Land file categories.
const (
	FileCategoryRegular    = "Regular"
	FileCategoryUnapproved = "Unapproved"
	FileCategoryLandUse    = "LandUse"
	FileCategoryMisc       = "Misc"
	FileCategorySinglePlot = "SinglePlot"
	FileCategoryRERA       = "RERA"
)

// Project statuses. Every file starts as new; transitions carry no
// ordering, the status is a label rather than a workflow.
const (
	ProjectStatusNew       = "new"
	ProjectStatusHandling  = "handling"
	ProjectStatusHold      = "hold"
	ProjectStatusCompleted = "completed"
)

// LandOwner is one owner of a land parcel, embedded in a LandFile.
type LandOwner struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// OwnerList stores the ordered owner slice as a JSON column.
type OwnerList []LandOwner

func (l OwnerList) Value() (driver.Value, error) {
	if l == nil {
		l = OwnerList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *OwnerList) Scan(value interface{}) error {
	if value == nil {
		*l = OwnerList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("owner list: unsupported column type %T", value)
	}
}

// LandFile is one land parcel file tracked by the business.
type LandFile struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	OwnerID      uint   `gorm:"index;not null" json:"-"`
	Category     string `gorm:"size:32;index;not null" json:"category"`
	SurveyNumber string `gorm:"size:64;index;not null" json:"surveyNumber"`

	MapLink  string `gorm:"size:512" json:"mapLink"`
	District string `gorm:"size:64;index;not null" json:"district"`
	Taluk    string `gorm:"size:64;not null" json:"taluk"`
	Village  string `gorm:"size:64;not null" json:"village"`

	Extent     float64 `gorm:"not null" json:"extent"`
	ExtentUnit string  `gorm:"size:16;not null" json:"extentUnit"`

	Owners        OwnerList `gorm:"type:text" json:"owners"`
	ContactName   string    `gorm:"size:64;not null" json:"contactName"`
	ContactMobile string    `gorm:"size:16;not null" json:"contactMobile"`

	ProjectStatus string `gorm:"size:16;index;not null;default:new" json:"projectStatus"`

	// Sub-workflow fields, empty string means unset.
	FileStatus   string `gorm:"size:32" json:"fileStatus"`
	DwgStatus    string `gorm:"size:32" json:"dwgStatus"`
	FormsStatus  string `gorm:"size:32" json:"formsStatus"`
	OnlineStatus string `gorm:"size:32" json:"onlineStatus"`

	Remarks string `gorm:"type:text" json:"remarks"`
	Notes   string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Stamp assigns identity and ownership before the file is persisted.
func (f *LandFile) Stamp(id string, owner uint) {
	f.ID = id
	f.OwnerID = owner
}
