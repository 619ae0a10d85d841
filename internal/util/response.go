package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the free-form body merged into the success envelope,
// e.g. {"data": ...} or {"count": ..., "data": ...}.
type Response map[string]interface{}

// Success writes {"success": true, ...body}.
func Success(c *gin.Context, status int, body Response) {
	out := gin.H{"success": true}
	for k, v := range body {
		out[k] = v
	}
	c.JSON(status, out)
}

// OK is Success with HTTP 200.
func OK(c *gin.Context, body Response) {
	Success(c, http.StatusOK, body)
}

// Created is Success with HTTP 201.
func Created(c *gin.Context, body Response) {
	Success(c, http.StatusCreated, body)
}

// Error writes {"success": false, "message": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}
