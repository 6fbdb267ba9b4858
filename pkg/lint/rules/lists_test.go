package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsemodBulletListRule(t *testing.T) {
	rule := NewUsemodBulletListRule()

	t.Run("bullet lines", func(t *testing.T) {
		findings := applyRule(t, rule, "* first\n** nested\ntext\n")
		require.Len(t, findings, 2)

		assert.Equal(t, "WK050", findings[0].RuleID)
		assert.Equal(t, "UseMod bullet list", findings[0].Message)
		assert.Equal(t, 1, findings[0].Column)
		assert.Equal(t, 2, findings[0].EndColumn)

		// The whole marker run is reported.
		assert.Equal(t, 2, findings[1].Line)
		assert.Equal(t, 3, findings[1].EndColumn)
	})

	t.Run("moinmoin list with leading space passes", func(t *testing.T) {
		findings := applyRule(t, rule, " * proper item\n")
		assert.Empty(t, findings)
	})

	t.Run("comment lines are exempt", func(t *testing.T) {
		findings := applyRule(t, rule, "## * not a list\n")
		assert.Empty(t, findings)
	})
}

func TestUsemodNumberedListRule(t *testing.T) {
	rule := NewUsemodNumberedListRule()

	t.Run("hash lines on a bullet page", func(t *testing.T) {
		findings := applyRule(t, rule, "* bullet\n# one\n## comment\n#REDIRECT Foo\n")
		require.Len(t, findings, 1)
		assert.Equal(t, "WK051", findings[0].RuleID)
		assert.Equal(t, "UseMod numbered list", findings[0].Message)
		assert.Equal(t, 2, findings[0].Line)
	})

	t.Run("hash run end column", func(t *testing.T) {
		findings := applyRule(t, rule, "* bullet\n### deep\n")
		require.Len(t, findings, 1)
		assert.Equal(t, 4, findings[0].EndColumn)
	})

	t.Run("no bullets means hash lines stay directives", func(t *testing.T) {
		findings := applyRule(t, rule, "#format wiki\n# looks like a list\n")
		assert.Empty(t, findings)
	})
}

func TestUsemodIndentRule(t *testing.T) {
	rule := NewUsemodIndentRule()

	t.Run("indented paragraph", func(t *testing.T) {
		findings := applyRule(t, rule, ": reply text\n")
		require.Len(t, findings, 1)
		assert.Equal(t, "WK052", findings[0].RuleID)
		assert.Equal(t, "UseMod indentation", findings[0].Message)
		assert.Equal(t, 1, findings[0].Column)
		assert.Equal(t, 2, findings[0].EndColumn)
	})

	t.Run("deep indent reports whole marker run", func(t *testing.T) {
		findings := applyRule(t, rule, "::: deep reply\n")
		require.Len(t, findings, 1)
		assert.Equal(t, 4, findings[0].EndColumn)
	})

	t.Run("smilie at line start is exempt", func(t *testing.T) {
		findings := applyRule(t, rule, ":) that was fun\n")
		assert.Empty(t, findings)
	})

	t.Run("plain text passes", func(t *testing.T) {
		findings := applyRule(t, rule, "text: with colon inside\n")
		assert.Empty(t, findings)
	})
}

func TestUsemodDefinitionListRule(t *testing.T) {
	rule := NewUsemodDefinitionListRule()

	t.Run("definition term", func(t *testing.T) {
		findings := applyRule(t, rule, ";term: definition\n")
		require.Len(t, findings, 1)
		assert.Equal(t, "WK053", findings[0].RuleID)
		assert.Equal(t, "UseMod definition list", findings[0].Message)
		assert.Equal(t, 1, findings[0].Column)
		assert.Equal(t, 2, findings[0].EndColumn)
	})

	t.Run("smilie at line start is exempt", func(t *testing.T) {
		findings := applyRule(t, rule, ";) wink\n")
		assert.Empty(t, findings)
	})
}
