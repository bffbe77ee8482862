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

// RegisterCommentRoutes registers the routes for comments with
// the RouterGroup that is passed.
func RegisterCommentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCommentList)
	r.GET("", GetComments)
	r.POST("", SetComment)

	r.OPTIONS("/:id", OptionsCommentDetail)
	r.DELETE("/:id", DeleteComment)
}

// CommentEditable represents one day note as sent by clients. A second
// set for the same person and day overwrites the text.
type CommentEditable struct {
	PersonID uuid.UUID  `json:"personId" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the person
	Date     types.Date `json:"date" binding:"required" example:"2026-03-02"`                               // The day the note belongs to
	Text     string     `json:"text" example:"On-site at the customer" default:""`                          // The note itself
}

type Comment struct {
	models.DefaultModel
	CommentEditable
}

type CommentListResponse struct {
	Data  []Comment `json:"data"`                                                          // List of comments
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CommentResponse struct {
	Data  *Comment `json:"data"`                                                          // Data for the comment
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CommentQueryFilter struct {
	PersonID tp_uuid.UUID `form:"person"`                    // By ID of the person
	From     types.Date   `form:"from" filterField:"false"`  // Start of the inclusive date range
	Until    types.Date   `form:"until" filterField:"false"` // End of the inclusive date range
}

func newComment(model models.Comment) Comment {
	return Comment{
		DefaultModel: model.DefaultModel,
		CommentEditable: CommentEditable{
			PersonID: model.PersonID,
			Date:     model.Date,
			Text:     model.Text,
		},
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Comments
// @Success		204
// @Router			/v1/comments [options]
func OptionsCommentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Comments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/comments/{id} [options]
func OptionsCommentDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Comment{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get comments
// @Description	Returns a list of comments
// @Tags			Comments
// @Produce		json
// @Success		200	{object}	CommentListResponse
// @Failure		400	{object}	CommentListResponse
// @Failure		500	{object}	CommentListResponse
// @Router			/v1/comments [get]
// @Param			person	query	string	false	"Filter by person ID"
// @Param			from	query	string	false	"Start of the inclusive date range"
// @Param			until	query	string	false	"End of the inclusive date range"
func GetComments(c *gin.Context) {
	var filter CommentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, CommentListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.Order("date ASC")

	if filter.PersonID != tp_uuid.Nil {
		q = q.Where("person_id = ?", filter.PersonID.UUID)
	}
	if !filter.From.IsZero() {
		q = q.Where("date(date) >= date(?)", filter.From)
	}
	if !filter.Until.IsZero() {
		q = q.Where("date(date) <= date(?)", filter.Until)
	}

	var comments []models.Comment
	err := q.Find(&comments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Comment, 0, len(comments))
	for _, comment := range comments {
		data = append(data, newComment(comment))
	}

	c.JSON(http.StatusOK, CommentListResponse{Data: data})
}

// @Summary		Set comment
// @Description	Attaches a note to a person-day. Setting the same day again overwrites the text.
// @Tags			Comments
// @Accept			json
// @Produce		json
// @Success		200		{object}	CommentResponse
// @Failure		400		{object}	CommentResponse
// @Failure		500		{object}	CommentResponse
// @Param			comment	body		CommentEditable	true	"Comment"
// @Router			/v1/comments [post]
func SetComment(c *gin.Context) {
	var editable CommentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	comment := models.Comment{
		PersonID: editable.PersonID,
		Date:     editable.Date,
		Text:     editable.Text,
	}

	err = models.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "person_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"text", "updated_at"}),
		}).
		Create(&comment).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	// Re-read into a fresh struct: on the overwrite path, the struct from
	// the Create call carries a newly generated ID that does not match the
	// existing row.
	var stored models.Comment
	err = models.DB.
		Where(&models.Comment{PersonID: editable.PersonID, Date: editable.Date}).
		First(&stored).
		Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CommentResponse{
			Error: &s,
		})
		return
	}

	data := newComment(stored)
	c.JSON(http.StatusOK, CommentResponse{Data: &data})
}

// @Summary		Delete comment
// @Description	Deletes a comment
// @Tags			Comments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var comment models.Comment
	err = models.DB.First(&comment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&comment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
