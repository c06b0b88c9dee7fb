package store

import "errors"

var (
	ErrBuildingQuery  = errors.New("error building query")
	ErrExecutingQuery = errors.New("error executing query")
	ErrScanningRow    = errors.New("error scanning row")
	ErrRecordNotFound = errors.New("record not found")
)
