package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larpwiki/wikiscan/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	want := []string{
		"WK001", "WK002", "WK003",
		"WK010", "WK011", "WK012",
		"WK020", "WK021", "WK022",
		"WK030", "WK031", "WK032", "WK033", "WK034", "WK035",
		"WK040", "WK041", "WK042",
		"WK050", "WK051", "WK052", "WK053",
	}
	assert.Equal(t, want, registry.IDs())

	for _, rule := range registry.Rules() {
		assert.NotEmpty(t, rule.Name(), "rule %s has no name", rule.ID())
		assert.NotEmpty(t, rule.Description(), "rule %s has no description", rule.ID())
		assert.NotEmpty(t, rule.Tags(), "rule %s has no tags", rule.ID())
		assert.True(t, rule.DefaultSeverity().IsValid(), "rule %s severity", rule.ID())
		assert.True(t, rule.DefaultEnabled(), "rule %s should be on by default", rule.ID())
	}
}

func TestDefaultRegistryIsPopulated(t *testing.T) {
	rule, ok := lint.DefaultRegistry.Get("WK001")
	require.True(t, ok)
	assert.Equal(t, "replacement-char", rule.Name())

	byName, ok := lint.DefaultRegistry.Get("usemod-tag")
	require.True(t, ok)
	assert.Equal(t, "WK020", byName.ID())
}
