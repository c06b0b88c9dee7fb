package service

import "errors"

var (
	// ErrNotLoggedIn means no authenticated session is available; sync
	// cycles cannot start without one.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrMappingFailed marks a record that cannot be translated between
	// its local and remote shapes. Requires data correction, not retry.
	ErrMappingFailed = errors.New("record mapping failed")
)
