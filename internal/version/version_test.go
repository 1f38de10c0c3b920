package version

import (
	"strings"
	"testing"
)

func TestGetReturnsVersion(t *testing.T) {
    if Get() != Version {
        t.Fatalf("Get() should return Version (%q), got %q", Version, Get())
    }
}

func TestDescribeString(t *testing.T) {
	info := Describe()
	if !strings.Contains(info.String(), Version) {
		t.Fatalf("String() = %q, want it to contain %q", info.String(), Version)
	}
	if info.Platform == "" || info.GoVersion == "" {
		t.Fatalf("incomplete build info: %+v", info)
	}
}
