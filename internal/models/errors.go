package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrPersonNameNotUnique  = errors.New("this person name is already in use")
	ErrProjectNameNotUnique = errors.New("this project name is already in use")
	ErrReferenceInvalid     = errors.New("there is no resource for the ID you specified in a reference")
	ErrAbsenceTypeInvalid   = errors.New("the absence type is invalid")
	ErrNameRequired         = errors.New("the name must not be empty")
)
