package api

import (
	"net/http" // HTTP status codes

	"league_system/internal/transfer" // Engine error taxonomy

	"github.com/gin-gonic/gin" // Gin web framework
)

// respond writes the common response envelope shared by every endpoint
func respond(c *gin.Context, success bool, message string, status, customCode int, data any, errs any) {
	body := gin.H{
		"success":     success,    // Whether the operation succeeded
		"message":     message,    // Human-readable message
		"status":      status,     // HTTP status mirrored in the body
		"custom_code": customCode, // Machine-readable code, zero when unused
	}
	if data != nil {
		body["data"] = data // Payload, present only on success
	}
	if errs != nil {
		body["errors"] = errs // Field errors, present only on failure
	}
	c.JSON(status, body)
}

// ok writes a success envelope with HTTP 200
func ok(c *gin.Context, message string, data any) {
	respond(c, true, message, http.StatusOK, 0, data, nil)
}

// created writes a success envelope with HTTP 201
func created(c *gin.Context, message string, data any) {
	respond(c, true, message, http.StatusCreated, 0, data, nil)
}

// fail writes a failure envelope
func fail(c *gin.Context, message string, status, customCode int) {
	respond(c, false, message, status, customCode, nil, nil)
}

// failEngine maps a transfer engine failure onto the envelope. Conflict kinds
// carry their custom code and map to 422 so clients can branch on the code.
func failEngine(c *gin.Context, err error) {
	engineErr, isEngine := transfer.AsError(err)
	if !isEngine {
		// Not a typed failure, treat as an unexpected persistence error
		fail(c, "Something went wrong", http.StatusInternalServerError, 0)
		return
	}
	status := http.StatusInternalServerError
	switch engineErr.Kind {
	case transfer.KindNotFound:
		status = http.StatusNotFound
	case transfer.KindForbidden:
		status = http.StatusForbidden
	case transfer.KindValidation:
		status = http.StatusBadRequest
	case transfer.KindConflict:
		status = http.StatusUnprocessableEntity
	}
	fail(c, engineErr.Message, status, engineErr.Code)
}

// currentUserID reads the authenticated user id set by the JWT middleware
func currentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get("userID") // Get userID from context
	if !exists {
		// If not, the caller is unauthenticated
		fail(c, "Unauthorized", http.StatusUnauthorized, 0)
		return 0, false
	}
	return userID.(uint), true
}
