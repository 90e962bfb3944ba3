package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/tutor-classes-api/pkg/errors"
)

// ErrorBody is the error contract consumed by the web client.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends data as the bare response body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 and an empty body.
func Created(c *gin.Context) {
	c.Status(http.StatusCreated)
	c.Writer.WriteHeaderNow()
}

// Error renders err as {"error": message}. Wrapped causes are attached to the
// gin context for logging and never written to the client.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.Header("Cache-Control", "no-store")
	c.AbortWithStatusJSON(appErr.Status, ErrorBody{Error: appErr.Message})
}

// Attachment streams a downloadable file.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, body)
}
