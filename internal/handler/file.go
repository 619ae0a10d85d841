package handler

import (
	"net/http"

	"github.com/REVSSPACE/mclp-backend/internal/middleware"
	"github.com/REVSSPACE/mclp-backend/internal/models"
	"github.com/REVSSPACE/mclp-backend/internal/repository"
	"github.com/REVSSPACE/mclp-backend/internal/stats"
	"github.com/REVSSPACE/mclp-backend/internal/util"
	"github.com/REVSSPACE/mclp-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FileHandler serves the land file endpoints.
type FileHandler struct {
	Repo *repository.Repository[models.LandFile, *models.LandFile]
}

func NewFileHandler(db *gorm.DB) *FileHandler {
	return &FileHandler{
		Repo: repository.New[models.LandFile](db, "created_at"),
	}
}

// ---------- request shapes ----------

type fileCreateReq struct {
	Category      string             `json:"category"`
	SurveyNumber  string             `json:"surveyNumber"`
	MapLink       string             `json:"mapLink"`
	District      string             `json:"district"`
	Taluk         string             `json:"taluk"`
	Village       string             `json:"village"`
	Extent        float64            `json:"extent"`
	ExtentUnit    string             `json:"extentUnit"`
	Owners        []models.LandOwner `json:"owners"`
	ContactName   string             `json:"contactName"`
	ContactMobile string             `json:"contactMobile"`
	FileStatus    string             `json:"fileStatus"`
	DwgStatus     string             `json:"dwgStatus"`
	FormsStatus   string             `json:"formsStatus"`
	OnlineStatus  string             `json:"onlineStatus"`
	Remarks       string             `json:"remarks"`
	Notes         string             `json:"notes"`
}

type fileUpdateReq struct {
	Category      *string             `json:"category"`
	SurveyNumber  *string             `json:"surveyNumber"`
	MapLink       *string             `json:"mapLink"`
	District      *string             `json:"district"`
	Taluk         *string             `json:"taluk"`
	Village       *string             `json:"village"`
	Extent        *float64            `json:"extent"`
	ExtentUnit    *string             `json:"extentUnit"`
	Owners        *[]models.LandOwner `json:"owners"`
	ContactName   *string             `json:"contactName"`
	ContactMobile *string             `json:"contactMobile"`
	ProjectStatus *string             `json:"projectStatus"`
	FileStatus    *string             `json:"fileStatus"`
	DwgStatus     *string             `json:"dwgStatus"`
	FormsStatus   *string             `json:"formsStatus"`
	OnlineStatus  *string             `json:"onlineStatus"`
	Remarks       *string             `json:"remarks"`
	Notes         *string             `json:"notes"`
}

// ---------- endpoints ----------

// List returns the caller's files, newest first, optionally filtered by
// projectStatus, category and district.
func (h *FileHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var scopes []repository.Scope
	if v := c.Query("projectStatus"); v != "" {
		scopes = append(scopes, repository.Where("project_status", v))
	}
	if v := c.Query("category"); v != "" {
		scopes = append(scopes, repository.Where("category", v))
	}
	if v := c.Query("district"); v != "" {
		scopes = append(scopes, repository.Where("district", v))
	}

	files, err := h.Repo.List(user.ID, "", scopes...)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"count": len(files), "data": files})
}

// Get returns one file by id.
func (h *FileHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	file, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "File not found")
		return
	}
	util.OK(c, util.Response{"data": file})
}

// Create validates and stores a new file. The project status is always
// initialized to new, regardless of what the payload carries.
func (h *FileHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req fileCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	file := models.LandFile{
		Category:      req.Category,
		SurveyNumber:  req.SurveyNumber,
		MapLink:       req.MapLink,
		District:      req.District,
		Taluk:         req.Taluk,
		Village:       req.Village,
		Extent:        req.Extent,
		ExtentUnit:    req.ExtentUnit,
		Owners:        req.Owners,
		ContactName:   req.ContactName,
		ContactMobile: req.ContactMobile,
		ProjectStatus: models.ProjectStatusNew,
		FileStatus:    req.FileStatus,
		DwgStatus:     req.DwgStatus,
		FormsStatus:   req.FormsStatus,
		OnlineStatus:  req.OnlineStatus,
		Remarks:       req.Remarks,
		Notes:         req.Notes,
	}
	if verr := validate.LandFile(&file); verr != nil {
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Create(user.ID, &file); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.Created(c, util.Response{"message": "File created successfully", "data": file})
}

// Update applies a partial payload to an existing file. Absent fields
// keep their value; fields present in the body, including empty strings,
// overwrite.
func (h *FileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req fileUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "File not found")
		return
	}

	if req.Category != nil {
		file.Category = *req.Category
	}
	if req.SurveyNumber != nil {
		file.SurveyNumber = *req.SurveyNumber
	}
	if req.MapLink != nil {
		file.MapLink = *req.MapLink
	}
	if req.District != nil {
		file.District = *req.District
	}
	if req.Taluk != nil {
		file.Taluk = *req.Taluk
	}
	if req.Village != nil {
		file.Village = *req.Village
	}
	if req.Extent != nil {
		file.Extent = *req.Extent
	}
	if req.ExtentUnit != nil {
		file.ExtentUnit = *req.ExtentUnit
	}
	if req.Owners != nil {
		file.Owners = *req.Owners
	}
	if req.ContactName != nil {
		file.ContactName = *req.ContactName
	}
	if req.ContactMobile != nil {
		file.ContactMobile = *req.ContactMobile
	}
	if req.ProjectStatus != nil {
		file.ProjectStatus = *req.ProjectStatus
	}
	if req.FileStatus != nil {
		file.FileStatus = *req.FileStatus
	}
	if req.DwgStatus != nil {
		file.DwgStatus = *req.DwgStatus
	}
	if req.FormsStatus != nil {
		file.FormsStatus = *req.FormsStatus
	}
	if req.OnlineStatus != nil {
		file.OnlineStatus = *req.OnlineStatus
	}
	if req.Remarks != nil {
		file.Remarks = *req.Remarks
	}
	if req.Notes != nil {
		file.Notes = *req.Notes
	}

	if verr := validate.LandFile(file); verr != nil {
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Update(file); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"message": "File updated successfully", "data": file})
}

// UpdateStatus overwrites the project status. Any transition between the
// four statuses is legal.
func (h *FileHandler) UpdateStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req struct {
		ProjectStatus string `json:"projectStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.ProjectStatuses[req.ProjectStatus] {
		util.Error(c, http.StatusBadRequest, "invalid value for projectStatus")
		return
	}

	file, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "File not found")
		return
	}

	file.ProjectStatus = req.ProjectStatus
	if err := h.Repo.Update(file); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"message": "Project status updated successfully", "data": file})
}

type handlingStatusReq struct {
	FileStatus   *string `json:"fileStatus"`
	Remarks      *string `json:"remarks"`
	DwgStatus    *string `json:"dwgStatus"`
	FormsStatus  *string `json:"formsStatus"`
	OnlineStatus *string `json:"onlineStatus"`
}

// UpdateHandlingStatus partially overwrites the sub-workflow fields. A
// field absent from the body is untouched; a field explicitly set to the
// empty string is cleared.
func (h *FileHandler) UpdateHandlingStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req handlingStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "File not found")
		return
	}

	if req.FileStatus != nil {
		file.FileStatus = *req.FileStatus
	}
	if req.Remarks != nil {
		file.Remarks = *req.Remarks
	}
	if req.DwgStatus != nil {
		file.DwgStatus = *req.DwgStatus
	}
	if req.FormsStatus != nil {
		file.FormsStatus = *req.FormsStatus
	}
	if req.OnlineStatus != nil {
		file.OnlineStatus = *req.OnlineStatus
	}

	if verr := validate.LandFile(file); verr != nil {
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Update(file); err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"message": "Handling status updated successfully", "data": file})
}

// Delete removes one file by id.
func (h *FileHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Repo.Delete(user.ID, c.Param("id")); err != nil {
		storeError(c, err, "File not found")
		return
	}
	util.OK(c, util.Response{"message": "File deleted successfully"})
}

// Dashboard returns the caller's project counts.
func (h *FileHandler) Dashboard(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	files, err := h.Repo.List(user.ID, "")
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"data": stats.SummarizeFiles(files)})
}
