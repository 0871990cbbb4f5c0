package constants

import "errors"

// CLI configuration errors.
var (
	ErrNotLoggedIn      = errors.New("not logged in, run 'teslactl login' first")
	ErrNoRefreshToken   = errors.New("no refresh token stored, run 'teslactl login' again")
	ErrNoRedirectCode   = errors.New("redirect URL carries no authorization code")
	ErrRegionRequired   = errors.New("--region is required for the fleet API")
	ErrUnknownRegion    = errors.New("unknown region, expected 'na' or 'eu'")
	ErrClientIDRequired = errors.New("--client-id is required for the fleet API")
)
