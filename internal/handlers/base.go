package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/leovoon/notbyai.space/internal/errs"

	"github.com/gin-gonic/gin"
)

// Fail writes a domain error as JSON with its mapped status. Anything that
// is not an *errs.Error is logged and answered as a 500 without leaking
// internals.
func Fail(c *gin.Context, err error) {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		if domainErr.Code == errs.CodeInternal {
			log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.JSON(domainErr.HTTPStatus(), gin.H{"error": domainErr.Message})
		return
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
