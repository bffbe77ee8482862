package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/models"
)

// PersonEditable represents all user configurable parameters
type PersonEditable struct {
	Name     string          `json:"name" example:"Anna Lindqvist" default:""`     // Name of the person
	Role     string          `json:"role" example:"Backend Developer" default:""`  // Free-text role description
	Capacity decimal.Decimal `json:"capacity" example:"8" default:"8"`             // Daily working hours
	Archived bool            `json:"archived" example:"true" default:"false"`      // Is the person archived?
	Skills   []string        `json:"skills" example:"go,sql"`                      // Skill tags, replaced wholesale on update
}

func (editable PersonEditable) model() models.Person {
	return models.Person{
		Name:     editable.Name,
		Role:     editable.Role,
		Capacity: editable.Capacity,
		Archived: editable.Archived,
	}
}

type PersonLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/persons/65392deb-5e92-4268-b114-297faad6cdce"`               // The person itself
	Allocations string `json:"allocations" example:"https://example.com/api/v1/allocations?person=65392deb-5e92-4268-b114-297faad6cdce"` // Allocations of this person
	Absences    string `json:"absences" example:"https://example.com/api/v1/absences?person=65392deb-5e92-4268-b114-297faad6cdce"`       // Absences of this person
}

type Person struct {
	models.DefaultModel
	PersonEditable
	Links PersonLinks `json:"links"`
}

func newPerson(c *gin.Context, model models.Person) (Person, error) {
	url := c.GetString(string(models.DBContextURL))

	skills, err := models.Skills(model.ID)
	if err != nil {
		return Person{}, err
	}

	return Person{
		DefaultModel: model.DefaultModel,
		PersonEditable: PersonEditable{
			Name:     model.Name,
			Role:     model.Role,
			Capacity: model.Capacity,
			Archived: model.Archived,
			Skills:   skills,
		},
		Links: PersonLinks{
			Self:        fmt.Sprintf("%s/v1/persons/%s", url, model.ID),
			Allocations: fmt.Sprintf("%s/v1/allocations?person=%s", url, model.ID),
			Absences:    fmt.Sprintf("%s/v1/absences?person=%s", url, model.ID),
		},
	}, nil
}

type PersonListResponse struct {
	Data       []Person    `json:"data"`                                                          // List of persons
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PersonCreateResponse struct {
	Data  []PersonResponse `json:"data"`                                                          // List of created persons or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PersonCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PersonResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PersonResponse struct {
	Data  *Person `json:"data"`                                                          // Data for the person
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PersonQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Role     string `form:"role" filterField:"false"`   // By role
	Archived bool   `form:"archived"`                   // Is the person archived?
	Search   string `form:"search" filterField:"false"` // Search for this text in name and role
	Skill    string `form:"skill" filterField:"false"`  // Only persons carrying this skill tag
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first person returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of persons to return. Defaults to 50.
}

func (f PersonQueryFilter) model() models.Person {
	return models.Person{
		Archived: f.Archived,
	}
}
