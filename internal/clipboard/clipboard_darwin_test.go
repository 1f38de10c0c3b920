//go:build darwin

package clipboard

import (
	"errors"
	"slices"
	"testing"
)

func TestTryAttemptsDarwinTools(t *testing.T) {
	var attempted []string
	look := func(name string) (string, error) {
		attempted = append(attempted, name)
		return "", errors.New("not found")
	}
	run := func(name string, args ...string) error { return nil }
	try(look, run)
	if !slices.Contains(attempted, "pbcopy") {
		t.Fatalf("expected pbcopy to be attempted, got %v", attempted)
	}
}
