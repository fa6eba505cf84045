package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want Weekday
	}{
		{"Mon", Monday},
		{"mon", Monday},
		{" TUE ", Tuesday},
		{"wednesday", Wednesday},
		{"Thurs", Thursday},
		{"fri", Friday},
		{"Saturday", Saturday},
		{"sun", Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWeekday_Invalid(t *testing.T) {
	for _, in := range []string{"", "M", "Mo", "Mox", "Funday", "mondays"} {
		_, err := ParseWeekday(in)
		assert.Error(t, err, in)
	}
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, Monday.Index())
	assert.Equal(t, 6, Sunday.Index())
	assert.Equal(t, -1, Weekday("Xyz").Index())
	assert.False(t, Weekday("mon").Valid())
}
