package format_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"chartscope/format"
)

func TestValue(t *testing.T) {
	f := format.New("en")
	cases := map[float64]string{
		0:         "0",
		42:        "42",
		1234:      "1,234",
		12_500:    "12.5k",
		2_500_000: "2.5M",
		-3:        "-3",
		3.14159:   "3.14",
		0.5:       "0.500",
	}
	for in, want := range cases {
		assert.Equal(t, want, f.Value(in), "value %v", in)
	}
}

func TestValueNonFinite(t *testing.T) {
	f := format.New("en")
	assert.Equal(t, "-", f.Value(math.Inf(1)))
}

func TestUnknownTagFallsBackToEnglish(t *testing.T) {
	f := format.New("not a tag!")
	require.Equal(t, language.English, f.Tag())
}

func TestAxisAndTitle(t *testing.T) {
	f := format.New("en")
	ms := time.Date(2019, time.March, 7, 12, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "Mar 7", f.Axis(ms))
	assert.Equal(t, "Thu, Mar 7", f.Title(ms))
}
