package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/types"
	tp_uuid "github.com/teamplan/backend/internal/uuid"
)

// AllocationEditable represents one allocation slot as sent by clients.
// Hours of zero or below delete the slot.
type AllocationEditable struct {
	PersonID  uuid.UUID       `json:"personId" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the person
	ProjectID uuid.UUID       `json:"projectId" binding:"required" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the project
	Date      types.Date      `json:"date" binding:"required" example:"2026-03-02"`                                // The day the hours are planned on
	Hours     decimal.Decimal `json:"hours" example:"6.5"`                                                         // Planned hours, zero or below deletes the slot
}

// Allocation is one allocation row with the joined person and project
// data the planning board needs.
type Allocation struct {
	ID          uuid.UUID       `json:"id" example:"927dbfa8-203f-4441-a7bb-0e4a55f00a55"`        // ID of the allocation
	PersonID    uuid.UUID       `json:"personId" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the person
	PersonName  string          `json:"personName" example:"Anna Lindqvist"`                      // Name of the person
	Capacity    decimal.Decimal `json:"capacity" example:"8"`                                     // Daily capacity of the person
	ProjectID   uuid.UUID       `json:"projectId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the project
	ProjectName string          `json:"projectName" example:"Website relaunch"`                   // Name of the project
	Color       string          `json:"color" example:"#3498db"`                                  // Display color of the project
	Date        types.Date      `json:"date" example:"2026-03-02"`                                // The day the hours are planned on
	Hours       decimal.Decimal `json:"hours" example:"6.5"`                                      // Planned hours
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                          // List of allocations
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                                          // Data for the allocation
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AllocationQueryFilter struct {
	PersonID  tp_uuid.UUID `form:"person"`                    // By ID of the person
	ProjectID tp_uuid.UUID `form:"project"`                   // By ID of the project
	From      types.Date   `form:"from" filterField:"false"`  // Start of the inclusive date range
	Until     types.Date   `form:"until" filterField:"false"` // End of the inclusive date range
}

// BulkAllocationEditable plans the same hours on several days at once.
type BulkAllocationEditable struct {
	PersonID  uuid.UUID       `json:"personId" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"`  // ID of the person
	ProjectID uuid.UUID       `json:"projectId" binding:"required" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the project
	Dates     []types.Date    `json:"dates" binding:"required" example:"2026-03-02,2026-03-03"`                    // The days the hours are planned on
	Hours     decimal.Decimal `json:"hours" example:"8"`                                                           // Planned hours, zero or below deletes the slots
}

// CopyWeekEditable copies one person's week to another week.
type CopyWeekEditable struct {
	PersonID uuid.UUID  `json:"personId" binding:"required" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the person
	From     types.Date `json:"from" binding:"required" example:"2026-03-02"`                               // Any day of the source week
	To       types.Date `json:"to" binding:"required" example:"2026-03-09"`                                 // Any day of the destination week
}

type CopyWeekResponse struct {
	Data  *CopyWeekResult `json:"data"`                                                          // Result of the copy
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CopyWeekResult struct {
	Copied int `json:"copied" example:"5"` // Number of allocation slots copied
}
