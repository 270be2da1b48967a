package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCardNotFound     = errors.New("id card not registered to any employee")
	ErrEmailExists      = errors.New("email already registered")
	ErrCardNumberExists = errors.New("id card already assigned")
)
