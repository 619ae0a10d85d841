// Package handler maps the REST surface onto the validator, the
// ownership-scoped repositories and the aggregate calculator.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/REVSSPACE/mclp-backend/internal/repository"
	"github.com/REVSSPACE/mclp-backend/internal/util"

	"github.com/gin-gonic/gin"
)

// storeError maps a repository error onto the response envelope: a
// missing or foreign-owned record yields 404, anything else 500.
func storeError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		util.Error(c, http.StatusNotFound, notFoundMsg)
		return
	}
	util.Error(c, http.StatusInternalServerError, err.Error())
}

var dateLayouts = []string{
	time.RFC3339,          // 2025-12-03T00:00:00+05:30
	"2006-01-02T15:04:05", // 2025-12-03T00:00:00
	"2006-01-02",          // 2025-12-03
}

// parseDate accepts the date formats the frontend sends.
func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
