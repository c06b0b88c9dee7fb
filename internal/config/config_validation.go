package config

import "errors"

// validate checks that every setting required to start the daemon is present.
// All violations are reported at once via errors.Join.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Remote.BaseURL == "" {
		errs = append(errs, ErrNoRemoteBaseURL)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoDatabaseDSN)
	}
	if c.App.CompanyID == "" {
		errs = append(errs, ErrNoCompanyID)
	}

	return errors.Join(errs...)
}
