package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/types"
	tp_uuid "github.com/teamplan/backend/internal/uuid"
)

type URIID struct {
	ID tp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// QueryRange is the inclusive date range most read endpoints accept.
type QueryRange struct {
	From  types.Date `form:"from" example:"2026-03-01"`
	Until types.Date `form:"until" example:"2026-03-31"`
}

// bindRange binds and validates the from/until query parameters. Both
// must be set and must not be inverted.
func bindRange(c *gin.Context) (QueryRange, error) {
	var r QueryRange
	if err := c.ShouldBindQuery(&r); err != nil {
		return QueryRange{}, err
	}

	if r.From.IsZero() || r.Until.IsZero() {
		return QueryRange{}, errRangeNotSet
	}

	if r.From.After(r.Until) {
		return QueryRange{}, errRangeInverted
	}

	return r, nil
}
