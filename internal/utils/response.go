package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData is the envelope every endpoint answers with.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Fields  []string    `json:"fields,omitempty"`
}

const errorMessage = "An error occurred"

func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, ResponseData{Status: status, Message: message, Data: data})
}

// Success answers 200 with data.
func Success(c *gin.Context, message string, data interface{}) {
	respondData(c, http.StatusOK, message, data)
}

// Created answers 201 with the new resource.
func Created(c *gin.Context, message string, data interface{}) {
	respondData(c, http.StatusCreated, message, data)
}

// Error answers with an error envelope and stops the handler chain, so
// middleware can call it and return.
func Error(c *gin.Context, statusCode int, reason string) {
	c.AbortWithStatusJSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: errorMessage,
		Error:   reason,
	})
}

// ValidationFailed answers 400 listing every offending field.
func ValidationFailed(c *gin.Context, fields []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ResponseData{
		Status:  http.StatusBadRequest,
		Message: errorMessage,
		Error:   "validation failed",
		Fields:  fields,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, reason string) {
	Error(c, http.StatusBadRequest, reason)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, reason string) {
	Error(c, http.StatusUnauthorized, reason)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, reason string) {
	Error(c, http.StatusForbidden, reason)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, reason string) {
	Error(c, http.StatusNotFound, reason)
}

// Conflict sends a 409 Conflict error response, used when the current state
// refuses a well-formed request.
func Conflict(c *gin.Context, reason string) {
	Error(c, http.StatusConflict, reason)
}

// TooManyRequests sends a 429 response for a form submitted again while its
// previous submission is pending.
func TooManyRequests(c *gin.Context, reason string) {
	Error(c, http.StatusTooManyRequests, reason)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, reason string) {
	Error(c, http.StatusInternalServerError, reason)
}
