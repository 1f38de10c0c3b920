package enumdesc

import "testing"

func TestDefaultIdentifier(t *testing.T) {
	cases := []struct{ in, want string }{
		{"red", "Red"},
		{"Red", "Red"},
		{"RED", "RED"},
		{"light_red", "LightRed"},
		{"dark-blue", "DarkBlue"},
		{"lightRed", "LightRed"},
		{"light red", "Lightred"},
		{"  green\t", "Green"},
		{"HTTPServer", "HTTPServer"},
		{"OKStatus", "OKStatus"},
		{"v2Api", "V2Api"},
		{"http_OK", "HttpOK"},
		{"__red--", "Red"},
		{"état", "État"},
		{"", ""},
		{" \n ", ""},
		{"_-_", ""},
	}
	for _, c := range cases {
		if got := DefaultIdentifier(c.in); got != c.want {
			t.Fatalf("DefaultIdentifier(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
