package worktime

import "errors"

var (
	ErrCategoryNotFound = errors.New("part-time category not found")
	ErrNoEmployeesMatch = errors.New("no employees match the given names")
)
