package clipboard

import (
	"errors"
	"testing"
)

func TestTrySkipsMissingAndFailingTools(t *testing.T) {
	look := func(name string) (string, error) {
		if name == "pbcopy" {
			return "", errors.New("not found")
		}
		return "/usr/bin/" + name, nil
	}
	var ran []string
	run := func(name string, args ...string) error {
		ran = append(ran, name)
		if name == "wl-copy" {
			return errors.New("no wayland display")
		}
		return nil
	}
	if got := try(look, run); got != "xclip" {
		t.Fatalf("try = %q, want xclip (ran %v)", got, ran)
	}
	if len(ran) != 2 {
		t.Fatalf("expected 2 run attempts, got %v", ran)
	}
}

func TestTryNothingAvailable(t *testing.T) {
	look := func(string) (string, error) { return "", errors.New("not found") }
	run := func(string, ...string) error {
		t.Fatal("run should not be called")
		return nil
	}
	if got := try(look, run); got != "" {
		t.Fatalf("try = %q, want empty", got)
	}
}
