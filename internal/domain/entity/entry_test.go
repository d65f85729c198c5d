package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryInMonth(t *testing.T) {
	entry := &Entry{Date: "2025-11-30"}
	assert.True(t, entry.InMonth(11, 2025))
	assert.False(t, entry.InMonth(12, 2025))
	assert.False(t, entry.InMonth(11, 2024))

	// month boundaries stay on their own side
	assert.False(t, (&Entry{Date: "2025-10-31"}).InMonth(11, 2025))
	assert.False(t, (&Entry{Date: "2025-12-01"}).InMonth(11, 2025))

	// unparseable dates never match
	assert.False(t, (&Entry{Date: "30/11/2025"}).InMonth(11, 2025))
}
