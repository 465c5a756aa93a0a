package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/utils"
)

// errorResponse renders any error in the shared envelope. Errors that are
// not an AppError are logged and masked as internal.
func errorResponse(c *gin.Context, err error) {
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		utils.LogError(c.Request.Context(), "Unclassified handler error", err)
		appErr = utils.NewInternalError()
	}

	c.JSON(appErr.StatusCode, gin.H{
		"success":    false,
		"error":      appErr,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// limitQuery parses the optional "limit" query parameter. Unparseable or
// missing values come back as 0 and take the endpoint default downstream.
func limitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		return 0
	}
	return limit
}
