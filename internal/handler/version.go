package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Build-time variables, set with -ldflags "-X ...handler.Version=1.2.0"
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion returns version information about the deployed build
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	info := buildVersionInfo(debug.ReadBuildInfo)
	return func(w http.ResponseWriter, r *http.Request) {
		info.Version = resolveVersion()
		respondJSON(w, http.StatusOK, info)
	}
}

// buildVersionInfo fills commit and build time from ldflags, falling back
// on the VCS stamp the go command embeds.
func buildVersionInfo(readBuildInfo func() (*debug.BuildInfo, bool)) VersionInfo {
	info := VersionInfo{
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// resolveVersion prefers the ldflags value, then $VERSION, then "dev"
func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
