package monimeControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"domestic trunk prefix", "076123456", "+23276123456"},
		{"already international", "+23276123456", "+23276123456"},
		{"country code without plus", "23276123456", "+23276123456"},
		{"bare subscriber number", "76123456", "+23276123456"},
		{"surrounding whitespace", "  076123456 ", "+23276123456"},
		{"empty", "", ""},
		{"foreign international kept", "+4479460000", "+4479460000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"076123456", "23276123456", "76123456", "+23276123456"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "normalizing %q twice changed the result", in)
	}
}

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		major float64
		want  int64
	}{
		{2500.00, 250000},
		{0.01, 1},
		{10.555, 1056}, // fractional cents round, not truncate
		{10.554, 1055},
		{19.99, 1999},
		{0.005, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.major), "major %v", tt.major)
	}
}

func TestToStringMapDropsNonScalars(t *testing.T) {
	in := map[string]interface{}{
		"note":    "gift wrap",
		"count":   float64(3),
		"rush":    true,
		"nested":  map[string]interface{}{"a": "b"},
		"list":    []interface{}{"x"},
		"nothing": nil,
	}
	out := toStringMap(in)
	assert.Equal(t, map[string]string{
		"note":  "gift wrap",
		"count": "3",
		"rush":  "true",
	}, out)
}
