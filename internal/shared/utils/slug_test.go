package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Go Enthusiasts", "go-enthusiasts"},
		{"  Trim Me  ", "trim-me"},
		{"Weird!!Chars##Here", "weirdcharshere"},
		{"multiple   spaces", "multiple-spaces"},
		{"--already--dashed--", "already-dashed"},
		{"CamelCase2024", "camelcase2024"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, GenerateSlug(c.in), "input %q", c.in)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("go-enthusiasts"))
	assert.True(t, IsValidSlug("abc123"))
	assert.False(t, IsValidSlug("Has Upper"))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug(""))
}
