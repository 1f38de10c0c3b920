package enumdesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"红色，", "红色"},
		{"  红色；  ", "红色"},
		{"、红色。", "红色"},
		{". green,", "green"},
		{"·蓝色", "蓝色"},
		{"，", ""},
		{"。；", ""},
		{"  ", ""},
		{"红色", "红色"},
		// Only the last separator counts; the suffix after it is discarded.
		{"红色，深红；备注", "红色，深红"},
		// The leading strip is single-shot.
		{"、、红色", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Sanitize(c.in), "input %q", c.in)
	}
}

func TestSanitizeStableForSingleSeparator(t *testing.T) {
	for _, in := range []string{"红色，", " 。绿色； ", "blue,", "dark red", "、黄色"} {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
