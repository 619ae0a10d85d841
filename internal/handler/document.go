package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/REVSSPACE/mclp-backend/internal/middleware"
	"github.com/REVSSPACE/mclp-backend/internal/models"
	"github.com/REVSSPACE/mclp-backend/internal/repository"
	"github.com/REVSSPACE/mclp-backend/internal/util"
	"github.com/REVSSPACE/mclp-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Extensions and mime fragments accepted for upload.
var allowedExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

var allowedMimeFragments = []string{
	"pdf", "jpg", "jpeg", "png", "doc", "docx", "xls", "xlsx",
	"msword", "officedocument", "ms-excel",
}

// DocumentHandler serves upload, download and metadata endpoints. The
// blob on disk and the database record live and die together: no record
// without a blob, no blob without exactly one record.
type DocumentHandler struct {
	Repo      *repository.Repository[models.Document, *models.Document]
	UploadDir string
	MaxBytes  int64
}

func NewDocumentHandler(db *gorm.DB, uploadDir string, maxBytes int64) *DocumentHandler {
	return &DocumentHandler{
		Repo:      repository.New[models.Document](db, "uploaded_at"),
		UploadDir: uploadDir,
		MaxBytes:  maxBytes,
	}
}

// List returns the caller's documents, newest first, optionally filtered
// by category.
func (h *DocumentHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var scopes []repository.Scope
	if v := c.Query("category"); v != "" {
		scopes = append(scopes, repository.Where("category", v))
	}

	docs, err := h.Repo.List(user.ID, "", scopes...)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	util.OK(c, util.Response{"count": len(docs), "data": docs})
}

// Get returns one document record by id.
func (h *DocumentHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	doc, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "Document not found")
		return
	}
	util.OK(c, util.Response{"data": doc})
}

func mimeAllowed(mime string) bool {
	mime = strings.ToLower(mime)
	for _, frag := range allowedMimeFragments {
		if strings.Contains(mime, frag) {
			return true
		}
	}
	return false
}

// Upload stores the multipart "file" field on disk under a generated
// name, then creates the metadata record. The category check runs after
// the blob is written; every failure past that point removes the blob
// again so no orphan survives the request.
func (h *DocumentHandler) Upload(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.Error(c, http.StatusBadRequest, "Please upload a file")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mime := fileHeader.Header.Get("Content-Type")
	if !allowedExtensions[ext] || !mimeAllowed(mime) {
		util.Error(c, http.StatusBadRequest, "Only PDF, images, and office documents are allowed")
		return
	}
	if fileHeader.Size > h.MaxBytes {
		util.Error(c, http.StatusBadRequest, fmt.Sprintf("File exceeds the %d byte limit", h.MaxBytes))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	storedName := uuid.NewString() + ext
	storagePath := filepath.Join(h.UploadDir, storedName)
	if err := c.SaveUploadedFile(fileHeader, storagePath); err != nil {
		util.Error(c, http.StatusInternalServerError, "failed to store file")
		return
	}

	doc := models.Document{
		StoredName:   storedName,
		OriginalName: fileHeader.Filename,
		StoragePath:  storagePath,
		SizeBytes:    fileHeader.Size,
		MimeType:     mime,
		Category:     c.PostForm("category"),
	}

	if verr := validate.Document(&doc); verr != nil {
		h.removeBlob(storagePath)
		if verr.Field == "category" && verr.Reason == "required" {
			util.Error(c, http.StatusBadRequest, "Category is required")
			return
		}
		util.Error(c, http.StatusBadRequest, verr.Message)
		return
	}

	if err := h.Repo.Create(user.ID, &doc); err != nil {
		h.removeBlob(storagePath)
		util.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	util.Created(c, util.Response{"message": "Document uploaded successfully", "data": doc})
}

// Download streams the blob as an attachment under its original name.
// A missing record and a missing blob both answer 404; only the logs
// tell them apart.
func (h *DocumentHandler) Download(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	doc, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "Document not found")
		return
	}

	if _, err := os.Stat(doc.StoragePath); err != nil {
		slog.Error("document blob missing from storage",
			"document_id", doc.ID, "path", doc.StoragePath, "error", err)
		util.Error(c, http.StatusNotFound, "File not found on server")
		return
	}

	c.FileAttachment(doc.StoragePath, doc.OriginalName)
}

// Delete removes the record, then its blob. A failing blob removal is
// logged and left for an operator sweep; the record deletion stands.
func (h *DocumentHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	doc, err := h.Repo.GetByID(user.ID, c.Param("id"))
	if err != nil {
		storeError(c, err, "Document not found")
		return
	}

	if err := h.Repo.Delete(user.ID, doc.ID); err != nil {
		storeError(c, err, "Document not found")
		return
	}
	h.removeBlob(doc.StoragePath)

	util.OK(c, util.Response{"message": "Document deleted successfully"})
}

// removeBlob deletes a blob from disk, logging instead of failing when
// the removal itself goes wrong.
func (h *DocumentHandler) removeBlob(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to remove document blob", "path", path, "error", err)
	}
}
