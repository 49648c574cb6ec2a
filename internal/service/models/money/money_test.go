package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Cents
	}{
		{"25.00", 2500},
		{"25", 2500},
		{"25.5", 2550},
		{"0.05", 5},
		{"0", 0},
		{" 90.00 ", 9000},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "-1.00", "+1.00", "1.234", "1.", "abc", "1.2x"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "Parse(%q)", in)
	}
}

func TestParse_Overflow(t *testing.T) {
	// Whole parts whose cent value exceeds int64 must error, never wrap
	// negative.
	for _, in := range []string{"184467440737095517", "184467440737095517.00", "9223372036854775807"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "Parse(%q)", in)
	}

	// The largest accepted whole part still parses with any fraction.
	got, err := Parse("92233720368547757.99")
	require.NoError(t, err)
	assert.Equal(t, Cents(9223372036854775799), got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "25.00", Cents(2500).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "90.00", Cents(9000).String())
}

func TestJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(Cents(2500))
	require.NoError(t, err)
	assert.Equal(t, `"25.00"`, string(out))

	var c Cents
	require.NoError(t, json.Unmarshal([]byte(`"25.00"`), &c))
	assert.Equal(t, Cents(2500), c)

	// Bare number tokens are parsed as text, not as float64.
	require.NoError(t, json.Unmarshal([]byte(`19.95`), &c))
	assert.Equal(t, Cents(1995), c)
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	var c Cents
	assert.Error(t, json.Unmarshal([]byte(`"-3.00"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"1.234"`), &c))
}
