// Package runmeta stores additional information about a speedrun, like the
// platform and region the game is played on. All of it is optional.
package runmeta

import "iter"

// Metadata describes a run. The zero value is an empty, fully usable
// metadata set. Custom variables keep their insertion order.
type Metadata struct {
	RunID        string `json:"runId,omitempty" yaml:"runId,omitempty" toml:"runId,omitempty"`
	Platform     string `json:"platform,omitempty" yaml:"platform,omitempty" toml:"platform,omitempty"`
	Region       string `json:"region,omitempty" yaml:"region,omitempty" toml:"region,omitempty"`
	UsesEmulator bool   `json:"usesEmulator,omitempty" yaml:"usesEmulator,omitempty" toml:"usesEmulator,omitempty"`

	variables []variable
	index     map[string]int
}

type variable struct {
	name, value string
}

// SetVariable sets a custom speedrun.com variable, such as the category or
// the glitch usage. Setting an existing variable overwrites its value but
// keeps its position.
func (m *Metadata) SetVariable(name, value string) {
	if i, ok := m.index[name]; ok {
		m.variables[i].value = value
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[name] = len(m.variables)
	m.variables = append(m.variables, variable{name: name, value: value})
}

// Variable returns the value of a custom variable. The second return is
// false if the variable was never set.
func (m *Metadata) Variable(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.variables[i].value, true
}

// RemoveVariable removes a custom variable, keeping the order of the rest.
func (m *Metadata) RemoveVariable(name string) {
	i, ok := m.index[name]
	if !ok {
		return
	}
	m.variables = append(m.variables[:i], m.variables[i+1:]...)
	delete(m.index, name)
	for j := i; j < len(m.variables); j++ {
		m.index[m.variables[j].name] = j
	}
}

// Variables iterates over all custom variables and their values, in the
// order they were first set.
func (m *Metadata) Variables() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, v := range m.variables {
			if !yield(v.name, v.value) {
				return
			}
		}
	}
}

// Len returns the number of custom variables.
func (m *Metadata) Len() int { return len(m.variables) }
