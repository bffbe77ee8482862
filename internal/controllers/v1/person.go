package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPersonRoutes registers the routes for persons with
// the RouterGroup that is passed.
func RegisterPersonRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPersonList)
		r.GET("", GetPersons)
		r.POST("", CreatePersons)
	}

	// Person with ID
	{
		r.OPTIONS("/:id", OptionsPersonDetail)
		r.GET("/:id", GetPerson)
		r.PATCH("/:id", UpdatePerson)
		r.DELETE("/:id", DeletePerson)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Persons
// @Success		204
// @Router			/v1/persons [options]
func OptionsPersonList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Persons
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/persons/{id} [options]
func OptionsPersonDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Person{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create persons
// @Description	Creates new persons
// @Tags			Persons
// @Produce		json
// @Success		201		{object}	PersonCreateResponse
// @Failure		400		{object}	PersonCreateResponse
// @Failure		500		{object}	PersonCreateResponse
// @Param			persons	body		[]PersonEditable	true	"Persons"
// @Router			/v1/persons [post]
func CreatePersons(c *gin.Context) {
	var editables []PersonEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PersonCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PersonCreateResponse{}

	for _, editable := range editables {
		person := editable.model()

		err = models.DB.Create(&person).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		if len(editable.Skills) > 0 {
			err = models.ReplaceSkills(person.ID, editable.Skills)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		data, err := newPerson(c, person)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}
		r.Data = append(r.Data, PersonResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get persons
// @Description	Returns a list of persons
// @Tags			Persons
// @Produce		json
// @Success		200	{object}	PersonListResponse
// @Failure		400	{object}	PersonListResponse
// @Failure		500	{object}	PersonListResponse
// @Router			/v1/persons [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			role		query	string	false	"Filter by role"
// @Param			archived	query	bool	false	"Is the person archived?"
// @Param			search		query	string	false	"Search for this text in name and role"
// @Param			skill		query	string	false	"Only persons carrying this skill tag"
// @Param			offset		query	uint	false	"The offset of the first person returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of persons to return. Defaults to 50."
func GetPersons(c *gin.Context) {
	var filter PersonQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Role, filter.Search)

	if filter.Skill != "" {
		q = q.Where("id IN (?)", models.DB.Model(&models.SkillTag{}).Select("person_id").Where("tag = ?", filter.Skill))
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 persons and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var persons []models.Person
	err := q.Find(&persons).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PersonListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Person, 0)
	for _, person := range persons {
		apiResource, err := newPerson(c, person)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PersonListResponse{
				Error: &s,
			})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, PersonListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get person
// @Description	Returns a specific person
// @Tags			Persons
// @Produce		json
// @Success		200	{object}	PersonResponse
// @Failure		400	{object}	PersonResponse
// @Failure		404	{object}	PersonResponse
// @Failure		500	{object}	PersonResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/persons/{id} [get]
func GetPerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var person models.Person
	err = models.DB.First(&person, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	data, err := newPerson(c, person)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PersonResponse{Data: &data})
}

// @Summary		Update person
// @Description	Update an existing person. Only values to be updated need to be specified. A "skills" array replaces the skill tags wholesale.
// @Tags			Persons
// @Accept			json
// @Produce		json
// @Success		200		{object}	PersonResponse
// @Failure		400		{object}	PersonResponse
// @Failure		404		{object}	PersonResponse
// @Failure		500		{object}	PersonResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			person	body		PersonEditable	true	"Person"
// @Router			/v1/persons/{id} [patch]
func UpdatePerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var person models.Person
	err = models.DB.First(&person, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PersonEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	var data PersonEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	// Skills are no database column, they are replaced explicitly below
	updateSkills := slices.Contains(updateFields, any("Skills"))
	updateFields = slices.DeleteFunc(updateFields, func(f any) bool { return f == any("Skills") })

	if len(updateFields) > 0 {
		err = models.DB.Model(&person).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PersonResponse{
				Error: &s,
			})
			return
		}
	}

	if updateSkills {
		err = models.ReplaceSkills(person.ID, data.Skills)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PersonResponse{
				Error: &s,
			})
			return
		}
	}

	r, err := newPerson(c, person)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PersonResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PersonResponse{Data: &r})
}

// @Summary		Delete person
// @Description	Deletes a person and all their allocations, absences, comments and skill tags
// @Tags			Persons
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/persons/{id} [delete]
func DeletePerson(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var person models.Person
	err = models.DB.First(&person, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&person).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
