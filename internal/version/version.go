package version

import (
	"fmt"
	"runtime"
)

// Version is overridden at build time with -ldflags "-X ...version.Version=v1.2.3".
var Version = "dev"

// Commit is the git revision the binary was built from.
var Commit = ""

// Get returns the version string.
func Get() string { return Version }

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Describe collects build information for the version command.
func Describe() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	if i.Commit == "" {
		return "aienum " + i.Version
	}
	return fmt.Sprintf("aienum %s (%s)", i.Version, i.Commit)
}
