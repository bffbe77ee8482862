package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/models"
	"github.com/teamplan/backend/internal/types"
	tp_uuid "github.com/teamplan/backend/internal/uuid"
	"gorm.io/gorm/clause"
)

// RegisterAbsenceRoutes registers the routes for absences with
// the RouterGroup that is passed.
func RegisterAbsenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAbsenceList)
	r.GET("", GetAbsences)
	r.POST("", SetAbsence)

	r.OPTIONS("/:id", OptionsAbsenceDetail)
	r.DELETE("/:id", DeleteAbsence)
}

// AbsenceEditable represents one absence day as sent by clients. A second
// set for the same person and day overwrites type and note.
type AbsenceEditable struct {
	PersonID uuid.UUID          `json:"personId" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the person
	Date     types.Date         `json:"date" binding:"required" example:"2026-03-02"`                               // The absent day
	Type     models.AbsenceType `json:"type" example:"VACATION"`                                                    // Reason for the absence
	Note     string             `json:"note" example:"Sportlov" default:""`                                         // Free-text note
}

type Absence struct {
	models.DefaultModel
	AbsenceEditable
}

type AbsenceListResponse struct {
	Data  []Absence `json:"data"`                                                          // List of absences
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AbsenceResponse struct {
	Data  *Absence `json:"data"`                                                          // Data for the absence
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AbsenceQueryFilter struct {
	PersonID tp_uuid.UUID `form:"person"`                    // By ID of the person
	Type     string       `form:"type" filterField:"false"`  // By absence type
	From     types.Date   `form:"from" filterField:"false"`  // Start of the inclusive date range
	Until    types.Date   `form:"until" filterField:"false"` // End of the inclusive date range
}

func newAbsence(model models.Absence) Absence {
	return Absence{
		DefaultModel: model.DefaultModel,
		AbsenceEditable: AbsenceEditable{
			PersonID: model.PersonID,
			Date:     model.Date,
			Type:     model.Type,
			Note:     model.Note,
		},
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Absences
// @Success		204
// @Router			/v1/absences [options]
func OptionsAbsenceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Absences
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/absences/{id} [options]
func OptionsAbsenceDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Absence{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get absences
// @Description	Returns a list of absences
// @Tags			Absences
// @Produce		json
// @Success		200	{object}	AbsenceListResponse
// @Failure		400	{object}	AbsenceListResponse
// @Failure		500	{object}	AbsenceListResponse
// @Router			/v1/absences [get]
// @Param			person	query	string	false	"Filter by person ID"
// @Param			type	query	string	false	"Filter by absence type"
// @Param			from	query	string	false	"Start of the inclusive date range"
// @Param			until	query	string	false	"End of the inclusive date range"
func GetAbsences(c *gin.Context) {
	var filter AbsenceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, AbsenceListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("date ASC")

	if filter.PersonID != tp_uuid.Nil {
		q = q.Where("person_id = ?", filter.PersonID.UUID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if !filter.From.IsZero() {
		q = q.Where("date(date) >= date(?)", filter.From)
	}
	if !filter.Until.IsZero() {
		q = q.Where("date(date) <= date(?)", filter.Until)
	}

	var absences []models.Absence
	err := q.Find(&absences).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AbsenceListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Absence, 0, len(absences))
	for _, absence := range absences {
		data = append(data, newAbsence(absence))
	}

	c.JSON(http.StatusOK, AbsenceListResponse{Data: data})
}

// @Summary		Set absence
// @Description	Marks a person as absent on a day. Setting the same day again overwrites type and note.
// @Tags			Absences
// @Accept			json
// @Produce		json
// @Success		200		{object}	AbsenceResponse
// @Failure		400		{object}	AbsenceResponse
// @Failure		500		{object}	AbsenceResponse
// @Param			absence	body		AbsenceEditable	true	"Absence"
// @Router			/v1/absences [post]
func SetAbsence(c *gin.Context) {
	var editable AbsenceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AbsenceResponse{
			Error: &s,
		})
		return
	}

	if editable.Type == "" {
		editable.Type = models.AbsenceVacation
	}

	absence := models.Absence{
		PersonID: editable.PersonID,
		Date:     editable.Date,
		Type:     editable.Type,
		Note:     editable.Note,
	}

	err = models.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "note", "updated_at"}),
		}).
		Create(&absence).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AbsenceResponse{
			Error: &s,
		})
		return
	}

	// Re-read into a fresh struct: on the overwrite path, the struct from
	// the Create call carries a newly generated ID that does not match the
	// existing row.
	var stored models.Absence
	err = models.DB.
		Where(&models.Absence{PersonID: editable.PersonID, Date: editable.Date}).
		First(&stored).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AbsenceResponse{
			Error: &s,
		})
		return
	}

	data := newAbsence(stored)
	c.JSON(http.StatusOK, AbsenceResponse{Data: &data})
}

// @Summary		Delete absence
// @Description	Deletes an absence
// @Tags			Absences
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/absences/{id} [delete]
func DeleteAbsence(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var absence models.Absence
	err = models.DB.First(&absence, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&absence).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
