package version

import "fmt"

// Populated at build time via -ldflags:
//
//	-X .../internal/version.BuildDate=2026-01-02
//	-X .../internal/version.BuildCommit=abc1234
var (
	BuildDate   string
	BuildCommit string
)

// BuildInfo describes the build metadata in structured form.
type BuildInfo struct {
	Date   string `json:"date"`
	Commit string `json:"commit"`
}

// Info returns structured version information. Safe to call at any
// time; unset fields report as "unknown".
func Info() BuildInfo {
	return BuildInfo{
		Date:   coalesce(BuildDate, "unknown"),
		Commit: coalesce(BuildCommit, "unknown"),
	}
}

// String returns a human-readable build string.
func String() string {
	info := Info()
	return fmt.Sprintf("build %s (%s)", info.Commit, info.Date)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
