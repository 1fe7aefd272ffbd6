package runmeta_test

import (
	"testing"

	"github.com/splitkey/splitkey/runmeta"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	var m runmeta.Metadata
	assert.Empty(t, m.RunID)
	assert.Zero(t, m.Len())

	_, ok := m.Variable("Category")
	assert.False(t, ok)

	// Iterating an empty set yields nothing.
	for range m.Variables() {
		t.Fatal("unexpected variable")
	}
}

func TestVariablesKeepInsertionOrder(t *testing.T) {
	var m runmeta.Metadata
	m.SetVariable("Category", "Any%")
	m.SetVariable("Glitches", "No Major Glitches")
	m.SetVariable("Version", "1.0")

	// Overwriting keeps the position.
	m.SetVariable("Category", "100%")

	var names, values []string
	for name, value := range m.Variables() {
		names = append(names, name)
		values = append(values, value)
	}
	assert.Equal(t, []string{"Category", "Glitches", "Version"}, names)
	assert.Equal(t, []string{"100%", "No Major Glitches", "1.0"}, values)

	got, ok := m.Variable("Glitches")
	assert.True(t, ok)
	assert.Equal(t, "No Major Glitches", got)
}

func TestRemoveVariable(t *testing.T) {
	var m runmeta.Metadata
	m.SetVariable("a", "1")
	m.SetVariable("b", "2")
	m.SetVariable("c", "3")

	m.RemoveVariable("b")
	m.RemoveVariable("missing")

	assert.Equal(t, 2, m.Len())
	_, ok := m.Variable("b")
	assert.False(t, ok)

	// Later entries stay addressable after the shift.
	got, ok := m.Variable("c")
	assert.True(t, ok)
	assert.Equal(t, "3", got)

	var names []string
	for name := range m.Variables() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"a", "c"}, names)
}
