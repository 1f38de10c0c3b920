//go:build linux

package clipboard

import (
	"errors"
	"slices"
	"testing"
)

func TestTryAttemptsLinuxTools(t *testing.T) {
	var attempted []string
	look := func(name string) (string, error) {
		attempted = append(attempted, name)
		return "", errors.New("not found")
	}
	run := func(name string, args ...string) error { return nil }
	try(look, run)
	if !slices.Contains(attempted, "xclip") && !slices.Contains(attempted, "wl-copy") {
		t.Fatalf("expected xclip or wl-copy to be attempted, got %v", attempted)
	}
}
