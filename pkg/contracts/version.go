// Package contracts holds the stable, externally visible definitions of the
// sales analytics pipeline: the domain types under contracts/domain and the
// application version.
package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the application.
	Version = "0.1.0"

	// AppName identifies the application in logs and HTTP headers.
	AppName = "salescli"
)

// FullVersion returns the version with build platform information.
func FullVersion() string {
	return fmt.Sprintf("%s %s (%s/%s)", AppName, Version, runtime.GOOS, runtime.GOARCH)
}

// UserAgent returns the User-Agent header value for outbound catalog
// requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}
