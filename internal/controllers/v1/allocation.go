package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/planner"
	tp_uuid "github.com/teamplan/backend/internal/uuid"
)

// RegisterAllocationRoutes registers the routes for allocations with
// the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAllocationList)
	r.GET("", GetAllocations)
	r.POST("", SetAllocation)

	r.OPTIONS("/bulk", OptionsAllocationBulk)
	r.POST("/bulk", BulkAllocate)

	r.OPTIONS("/copy-week", OptionsAllocationCopyWeek)
	r.POST("/copy-week", CopyWeek)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func OptionsAllocationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/bulk [options]
func OptionsAllocationBulk(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations/copy-week [options]
func OptionsAllocationCopyWeek(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get allocations
// @Description	Returns allocations with joined person and project data
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		400	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/v1/allocations [get]
// @Param			person	query	string	false	"Filter by person ID"
// @Param			project	query	string	false	"Filter by project ID"
// @Param			from	query	string	false	"Start of the inclusive date range"
// @Param			until	query	string	false	"End of the inclusive date range"
func GetAllocations(c *gin.Context) {
	var filter AllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AllocationListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Preload("Person").
		Preload("Project").
		Order("date ASC")

	if filter.PersonID != tp_uuid.Nil {
		q = q.Where("person_id = ?", filter.PersonID.UUID)
	}
	if filter.ProjectID != tp_uuid.Nil {
		q = q.Where("project_id = ?", filter.ProjectID.UUID)
	}
	if !filter.From.IsZero() {
		q = q.Where("date(date) >= date(?)", filter.From)
	}
	if !filter.Until.IsZero() {
		q = q.Where("date(date) <= date(?)", filter.Until)
	}

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, Allocation{
			ID:          allocation.ID,
			PersonID:    allocation.PersonID,
			PersonName:  allocation.Person.Name,
			Capacity:    allocation.Person.Capacity,
			ProjectID:   allocation.ProjectID,
			ProjectName: allocation.Project.Name,
			Color:       allocation.Project.Color,
			Date:        allocation.Date,
			Hours:       allocation.Hours,
		})
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}

// @Summary		Set allocation
// @Description	Sets the hours of one person-project-day slot. Hours of zero or below delete the slot.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Success		204
// @Failure		400			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/v1/allocations [post]
func SetAllocation(c *gin.Context) {
	var editable AllocationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	err = planner.SetAllocation(editable.PersonID, editable.ProjectID, editable.Date, editable.Hours)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	// The slot was deleted
	if !editable.Hours.IsPositive() {
		c.JSON(http.StatusNoContent, nil)
		return
	}

	var allocation models.Allocation
	err = models.DB.
		Preload("Person").
		Preload("Project").
		Where(&models.Allocation{PersonID: editable.PersonID, ProjectID: editable.ProjectID, Date: editable.Date}).
		First(&allocation).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AllocationResponse{Data: &Allocation{
		ID:          allocation.ID,
		PersonID:    allocation.PersonID,
		PersonName:  allocation.Person.Name,
		Capacity:    allocation.Person.Capacity,
		ProjectID:   allocation.ProjectID,
		ProjectName: allocation.Project.Name,
		Color:       allocation.Project.Color,
		Date:        allocation.Date,
		Hours:       allocation.Hours,
	}})
}

// @Summary		Bulk allocate
// @Description	Sets the same hours on several days of one person-project pair
// @Tags			Allocations
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			bulk	body		BulkAllocationEditable	true	"Bulk allocation"
// @Router			/v1/allocations/bulk [post]
func BulkAllocate(c *gin.Context) {
	var editable BulkAllocationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = planner.BulkAllocate(editable.PersonID, editable.ProjectID, editable.Dates, editable.Hours)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Copy week
// @Description	Copies all allocation slots of one person from one week to another. The given dates are normalized to their Mondays.
// @Tags			Allocations
// @Accept			json
// @Produce		json
// @Success		200		{object}	CopyWeekResponse
// @Failure		400		{object}	CopyWeekResponse
// @Failure		500		{object}	CopyWeekResponse
// @Param			copy	body		CopyWeekEditable	true	"Copy instruction"
// @Router			/v1/allocations/copy-week [post]
func CopyWeek(c *gin.Context) {
	var editable CopyWeekEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CopyWeekResponse{
			Error: &s,
		})
		return
	}

	copied, err := planner.CopyWeek(editable.PersonID, editable.From.Monday(), editable.To.Monday())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CopyWeekResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CopyWeekResponse{Data: &CopyWeekResult{Copied: copied}})
}
