package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRelease(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1.2.3", true},
		{"v1.2.3", true},
		{"0.0.0-dev", false},
		{"1.0.0-rc.1", false},
		{"not-a-version", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRelease(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("v2.5.1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Major())
	assert.Equal(t, uint64(5), v.Minor())

	_, err = Parse("garbage")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	s := String()
	assert.Contains(t, s, "carbonlens "+GetVersion())
	assert.Contains(t, s, "development build")
	assert.Contains(t, s, GetGitCommit())
}
