package models

import (
	"fmt"
	"io"
)

// AppBuildInfo is the build metadata injected with -ldflags -X. Empty
// values read as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	na := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return AppBuildInfo{Version: na(version), Date: na(date), Commit: na(commit)}
}

// Fprint writes the metadata as the three lines both binaries print at
// startup or on request.
func (a AppBuildInfo) Fprint(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}
