// Package misc keeps build time program identification.
package misc

// Set by linker flags at build time.
var (
	version = "dev"
	githash = "unknown"
)

const appName = "panelgen"

// GetAppName returns program name, stable regardless of how binary was renamed.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git revision program was built from.
func GetGitHash() string {
	return githash
}
