package core

import (
	"testing"

	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/assert"
)

// stubClassifier returns a fixed prediction for every message.
type stubClassifier struct {
	label      schema.Label
	confidence float64
	ok         bool
}

func (s stubClassifier) Classify(string) (schema.Label, float64, bool) {
	return s.label, s.confidence, s.ok
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		parentCount int
		expected    schema.Label
	}{
		{"merge wins over everything", `Revert "feat: x"`, 2, schema.LabelMerge},
		{"revert beats conventional prefix", `Revert "feat: x"`, 1, schema.LabelRevert},
		{"revert conventional form", "revert: drop flag", 1, schema.LabelRevert},
		{"release version tag", "v1.2.3", 1, schema.LabelRelease},
		{"release keyword", "Release 2.0", 1, schema.LabelRelease},
		{"release bump", "bump version to 3.1", 1, schema.LabelRelease},
		{"conventional feat", "feat: add parser", 1, schema.LabelFeat},
		{"conventional feat with scope", "feat(core): add parser", 1, schema.LabelFeat},
		{"conventional breaking bang", "fix!: drop legacy path", 1, schema.LabelFix},
		{"conventional bare type", "chore", 1, schema.LabelChore},
		{"conventional space separator", "docs update readme", 1, schema.LabelDocs},
		{"prefix must not glue to word", "fixing: x", 1, schema.LabelOther},
		{"feature is not feat", "feature: big thing", 1, schema.LabelOther},
		{"natural language fixed", "Fixed the parser crash", 1, schema.LabelFix},
		{"natural language added", "Added tests for walker", 1, schema.LabelFeat},
		{"bugfix heuristic", "Bugfix for crash on empty input", 1, schema.LabelFix},
		{"hotfix heuristic", "hotfix: restore prod config", 1, schema.LabelFix},
		{"issue closing keyword", "This fixes #12", 1, schema.LabelFix},
		{"second line is ignored", "update\nfix: not the first line", 1, schema.LabelOther},
		{"fallback other", "miscellaneous work", 1, schema.LabelOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.message, tt.parentCount, nil))
		})
	}
}

func TestClassifyMLFallback(t *testing.T) {
	t.Run("confident prediction fills in for other", func(t *testing.T) {
		ml := stubClassifier{label: schema.LabelPerf, confidence: 0.9, ok: true}
		assert.Equal(t, schema.LabelPerf, Classify("speed things up", 1, ml))
	})

	t.Run("low confidence is rejected", func(t *testing.T) {
		ml := stubClassifier{label: schema.LabelPerf, confidence: 0.3, ok: true}
		assert.Equal(t, schema.LabelOther, Classify("speed things up", 1, ml))
	})

	t.Run("floor is exclusive", func(t *testing.T) {
		ml := stubClassifier{label: schema.LabelPerf, confidence: schema.MLConfidenceFloor, ok: true}
		assert.Equal(t, schema.LabelOther, Classify("speed things up", 1, ml))
	})

	t.Run("rules win over the classifier", func(t *testing.T) {
		ml := stubClassifier{label: schema.LabelPerf, confidence: 0.99, ok: true}
		assert.Equal(t, schema.LabelFeat, Classify("feat: add parser", 1, ml))
	})

	t.Run("no prediction falls back to other", func(t *testing.T) {
		ml := stubClassifier{ok: false}
		assert.Equal(t, schema.LabelOther, Classify("miscellaneous work", 1, ml))
	})
}

func TestExtractTicketRef(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"bracketed key wins over bare", "fix [CORE-99] for JIRA-123", "CORE-99"},
		{"bare jira key", "JIRA-123 rework login", "JIRA-123"},
		{"bare key inside parens", "rework login (JIRA-123)", "JIRA-123"},
		{"single letter is not a key", "A-123 something", ""},
		{"key glued to letters", "PROJX-12abc trailing", ""},
		{"key after hyphen prefix", "pre-FIX-12 thing", ""},
		{"closing keyword issue", "resolve bug, fixes #42", "#42"},
		{"closes keyword issue", "cleanup, closes #7", "#7"},
		{"bare issue number", "address #123 regression", "#123"},
		{"hash without digits", "use # for comments", ""},
		{"bracket without key", "fix [wip] parser", ""},
		{"second line ignored", "update\n[CORE-99] hidden", ""},
		{"no reference", "refactor the walker", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractTicketRef(tt.message))
		})
	}
}
