package cli

import "testing"

func TestDisableColorsClearsPalette(t *testing.T) {
	saved := make([]string, len(palette))
	for i, p := range palette {
		saved[i] = *p
	}
	t.Cleanup(func() {
		for i, p := range palette {
			*p = saved[i]
		}
	})

	DisableColors()
	for i, p := range palette {
		if *p != "" {
			t.Fatalf("palette[%d] = %q after DisableColors", i, *p)
		}
	}
	if ColorGreen+IconSuccess+ColorReset != IconSuccess {
		t.Fatal("icons should survive DisableColors")
	}
}

func TestColorEnabledHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if colorEnabled() {
		t.Fatal("NO_COLOR should disable color")
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "dumb")
	if colorEnabled() {
		t.Fatal("TERM=dumb should disable color")
	}
}
