package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files, which
	// hold tokens and OAuth secrets.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// WakeUpTimeout covers wake-up round trips, which can take a while
	// when the vehicle is asleep.
	WakeUpTimeout = 60 * time.Second

	// DefaultWebLoginTimeout bounds the wait for the login redirect.
	DefaultWebLoginTimeout = 5 * time.Minute
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries for
	// transient failures.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Headers sent with every request.
const (
	// DefaultUserAgent identifies this library.
	DefaultUserAgent = "teslago"

	// VendorUserAgent is the app-emulation header value expected by the
	// owner API.
	VendorUserAgent = "TeslaApp/4.9.2"

	// VendorUserAgentHeader is the header name for VendorUserAgent.
	VendorUserAgentHeader = "x-tesla-user-agent"
)

// Cache defaults.
const (
	// DefaultCacheTTL is how long GET responses stay fresh.
	DefaultCacheTTL = 10 * time.Second

	// DefaultCacheSize caps the memory cache entry count.
	DefaultCacheSize = 256
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)
