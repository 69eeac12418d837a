package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := Generate("S")
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func TestGeneratePrefixes(t *testing.T) {
	assert.True(t, strings.HasPrefix(StaffID(), "S-"))
	assert.True(t, strings.HasPrefix(UnavailabilityID(), "U-"))
	assert.True(t, strings.HasPrefix(HistoryID(), "H-"))
	assert.False(t, strings.Contains(Generate(""), "-id-"))
}

func TestFallbackIsUniquePerPrefix(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := fallback("H")
		assert.True(t, strings.HasPrefix(id, "H-"))
		_, dup := seen[id]
		assert.False(t, dup, "duplicate fallback id %q", id)
		seen[id] = struct{}{}
	}
}
