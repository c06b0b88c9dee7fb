package config

import "errors"

var (
	ErrNoRemoteBaseURL = errors.New("remote base URL is not specified")
	ErrNoDatabaseDSN   = errors.New("local database DSN is not specified")
	ErrNoCompanyID     = errors.New("company ID is not specified")
)
