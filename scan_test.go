package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanNumber(t *testing.T) {
	cases := []struct {
		src string
		v   float64
		pos int
		err bool
	}{
		{src: "0", v: 0, pos: 1},
		{src: "9876543210", v: 9876543210, pos: 10},
		{src: "1.5", v: 1.5, pos: 3},
		{src: ".5", v: 0.5, pos: 2},
		{src: "5.", v: 5, pos: 2},
		{src: "  7", v: 7, pos: 3},
		{src: "1e3", v: 1000, pos: 3},
		{src: "1E3", v: 1000, pos: 3},
		{src: "1e+3", v: 1000, pos: 4},
		{src: "1e-3", v: 0.001, pos: 4},
		{src: "1.5e2x", v: 150, pos: 5},
		// A broken exponent suffix is rolled back, not consumed.
		{src: "1e", v: 1, pos: 1},
		{src: "1e+", v: 1, pos: 1},
		{src: "1e-x", v: 1, pos: 1},
		// A second dot ends the mantissa.
		{src: "1.2.3", v: 1.2, pos: 3},
		// No digit anywhere in the mantissa is an error.
		{src: "", err: true},
		{src: ".", err: true},
		{src: "x", err: true},
		{src: "+1", err: true},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			p := parser{src: c.src}
			v, err := p.scanNumber()
			if c.err {
				require.Error(t, err)
				var ne *NumberError
				require.ErrorAs(t, err, &ne)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.v, v)
			assert.Equal(t, c.pos, p.pos)
		})
	}
}

func TestStartsFactor(t *testing.T) {
	cases := []struct {
		src string
		r   bool
	}{
		{"(1)", true},
		{"5", true},
		{".5", true},
		{"  5", true},
		{"+5", false},
		{"-5", false},
		{"*", false},
		{"", false},
	}
	for _, c := range cases {
		p := parser{src: c.src}
		if got := p.startsFactor(); got != c.r {
			t.Errorf("startsFactor on %q: want %v, got %v", c.src, c.r, got)
		}
	}
}
