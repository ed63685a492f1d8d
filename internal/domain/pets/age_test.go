package pets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(f float64) *float64 { return &f }

func TestAgeLabel(t *testing.T) {
	cases := []struct {
		name string
		age  *float64
		want string
	}{
		{"nil", nil, "Not specified"},
		{"zero", ptr(0), "Not specified"},
		{"negative", ptr(-1), "Not specified"},
		{"nan", ptr(math.NaN()), "Not specified"},
		{"half year", ptr(0.5), "6 months"},
		{"one month", ptr(1.0 / 12), "1 month"},
		{"rounds months", ptr(0.3), "4 months"},
		{"tiny", ptr(0.01), "1 month"},
		{"almost a year", ptr(0.99), "12 months"},
		{"one year", ptr(1), "1 year"},
		{"two and a half", ptr(2.5), "2.5 years"},
		{"whole years", ptr(3), "3 years"},
		{"one decimal max", ptr(1.26), "1.3 years"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeLabel(tc.age))
		})
	}
}
