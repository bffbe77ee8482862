package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
)

// ProjectEditable represents all user configurable parameters
type ProjectEditable struct {
	Name      string      `json:"name" example:"Website relaunch" default:""`  // Name of the project
	Color     string      `json:"color" example:"#e74c3c" default:"#3498db"`   // Display color as hex code
	StartDate *types.Date `json:"startDate" example:"2026-03-01"`              // Informational start date
	EndDate   *types.Date `json:"endDate" example:"2026-06-30"`                // Informational end date
	Archived  bool        `json:"archived" example:"true" default:"false"`     // Is the project archived?
}

func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:      editable.Name,
		Color:     editable.Color,
		StartDate: editable.StartDate,
		EndDate:   editable.EndDate,
		Archived:  editable.Archived,
	}
}

type ProjectLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/projects/10b9705d-3356-459e-9d5a-28d42a6c4547"`                // The project itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?project=10b9705d-3356-459e-9d5a-28d42a6c4547"` // Allocations of this project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:      model.Name,
			Color:     model.Color,
			StartDate: model.StartDate,
			EndDate:   model.EndDate,
			Archived:  model.Archived,
		},
		Links: ProjectLinks{
			Self:        fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?project=%s", url, model.ID),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of projects
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Data  []ProjectResponse `json:"data"`                                                          // List of created projects or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Data  *Project `json:"data"`                                                          // Data for the project
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProjectQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Archived bool   `form:"archived"`                   // Is the project archived?
	Search   string `form:"search" filterField:"false"` // Search for this text in the name
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first project returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of projects to return. Defaults to 50.
}

func (f ProjectQueryFilter) model() models.Project {
	return models.Project{
		Archived: f.Archived,
	}
}
