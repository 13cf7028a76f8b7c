package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tavolo/tavolo-api/internal/presentation/http/dto/response"
	"github.com/tavolo/tavolo-api/pkg/pagination"
)

// GetUserID extracts the authenticated user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the authenticated user's role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	return role.(string)
}

// pageParams reads page-based pagination values from the query string
func pageParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		params.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		params.PerPage = perPage
	}
	params.Validate()
	return params
}

// parseUUIDParam parses a UUID path parameter, replying 400 on failure.
// The bool result reports whether the caller should continue.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDBody parses a UUID string from a request body field, replying
// 400 on failure
func parseUUIDBody(c *gin.Context, value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		response.BadRequest(c, "Invalid "+field)
		return uuid.Nil, err
	}
	return id, nil
}

// parseTableParam parses the table number path parameter
func parseTableParam(c *gin.Context) (int, bool) {
	tableNo, err := strconv.Atoi(c.Param("table"))
	if err != nil || tableNo < 1 {
		response.BadRequest(c, "Invalid table number")
		return 0, false
	}
	return tableNo, true
}
