// Package buildinfo holds release metadata set at link time, e.g.
//
//	go build -ldflags "-X github.com/radio4000/r4/internal/buildinfo.Version=v0.4.0"
//
// All values are empty for local builds; the version command then falls
// back to the module build info.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
