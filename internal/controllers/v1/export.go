package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/teamplan/backend/internal/export"
	"github.com/teamplan/backend/internal/httputil"
	"github.com/teamplan/backend/internal/models"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// RegisterExportRoutes registers the routes for file exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/allocations.csv", httputil.OptionsGet)
	r.GET("/allocations.csv", GetAllocationsCSV)

	r.OPTIONS("/allocations.xlsx", httputil.OptionsGet)
	r.GET("/allocations.xlsx", GetAllocationsXLSX)

	r.OPTIONS("/personnel.csv", httputil.OptionsGet)
	r.GET("/personnel.csv", GetPersonnelCSV)

	r.OPTIONS("/occupancy.csv", httputil.OptionsGet)
	r.GET("/occupancy.csv", GetOccupancyCSV)

	r.OPTIONS("/occupancy.pdf", httputil.OptionsGet)
	r.GET("/occupancy.pdf", GetOccupancyPDF)

	r.OPTIONS("/backup.json", httputil.OptionsGet)
	r.GET("/backup.json", GetBackup)
}

type BackupResponse struct {
	Data         map[string]json.RawMessage `json:"data"`         // All resources of the instance
	CreationTime time.Time                  `json:"creationTime"` // Time the backup was created
}

// @Summary		Export everything
// @Description	Exports all resources of the instance as JSON
// @Tags			Exports
// @Produce		json
// @Success		200	{object}	BackupResponse
// @Failure		500	{object}	httpError
// @Router			/v1/exports/backup.json [get]
func GetBackup(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, BackupResponse{
		Data:         resources,
		CreationTime: time.Now(),
	})
}

// @Summary		Export allocations as CSV
// @Description	Returns every allocation of the range as a semicolon separated file
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/exports/allocations.csv [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetAllocationsCSV(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	buffer, err := export.AllocationsCSV(r.From, r.Until)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=allocations_%s_%s.csv", r.From, r.Until))
	c.Data(http.StatusOK, contentTypeCSV, buffer.Bytes())
}

// @Summary		Export allocations as XLSX
// @Description	Returns the allocations of the range as a workbook with one sheet per ISO week
// @Tags			Exports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/exports/allocations.xlsx [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetAllocationsXLSX(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	buffer, err := export.AllocationsXLSX(r.From, r.Until)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=allocations_%s_%s.xlsx", r.From, r.Until))
	c.Data(http.StatusOK, contentTypeXLSX, buffer.Bytes())
}

// @Summary		Export personnel as CSV
// @Description	Returns the whole roster, archived persons included, as a semicolon separated file
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/exports/personnel.csv [get]
func GetPersonnelCSV(c *gin.Context) {
	buffer, err := export.PersonnelCSV()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=personnel.csv")
	c.Data(http.StatusOK, contentTypeCSV, buffer.Bytes())
}

// @Summary		Export occupancy as CSV
// @Description	Returns the occupancy report of the range as a semicolon separated file
// @Tags			Exports
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/exports/occupancy.csv [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetOccupancyCSV(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	buffer, err := export.OccupancyCSV(r.From, r.Until)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=occupancy_%s_%s.csv", r.From, r.Until))
	c.Data(http.StatusOK, contentTypeCSV, buffer.Bytes())
}

// @Summary		Export occupancy as PDF
// @Description	Returns the occupancy report of the range as a printable PDF
// @Tags			Exports
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/exports/occupancy.pdf [get]
// @Param			from	query	string	true	"Start of the inclusive date range"
// @Param			until	query	string	true	"End of the inclusive date range"
func GetOccupancyPDF(c *gin.Context) {
	r, err := bindRange(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	buffer, err := export.OccupancyPDF(r.From, r.Until)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=occupancy_%s_%s.pdf", r.From, r.Until))
	c.Data(http.StatusOK, contentTypePDF, buffer.Bytes())
}
