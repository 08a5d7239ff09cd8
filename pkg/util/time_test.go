package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"30", 30 * time.Second},
		{" 2d ", 48 * time.Hour},
		{"1m30s", 90 * time.Second},
		{"500ms", 500 * time.Millisecond},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseDuration("xd")
	assert.Error(t, err)
	_, err = ParseDuration("soon")
	assert.Error(t, err)
}

func TestMustParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, MustParseDuration("bad", 5*time.Second))
	assert.Equal(t, 5*time.Second, MustParseDuration("", 5*time.Second))
	assert.Equal(t, time.Minute, MustParseDuration("60", 5*time.Second))
}
