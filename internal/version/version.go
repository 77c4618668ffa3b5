// Package version holds build information, overridden at link time with -ldflags -X.
package version

// Build information
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent returns the generator identifier written into manifests
func UserAgent() string {
	return "ShortClass/" + Version
}
