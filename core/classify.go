package core

import (
	"strings"

	"github.com/huangsam/gitintel/internal/contract"
	"github.com/huangsam/gitintel/schema"
)

// conventionalPrefixes are the commit type prefixes recognized when followed
// by a scope, separator, or end of line.
var conventionalPrefixes = []schema.Label{
	schema.LabelFeat,
	schema.LabelFix,
	schema.LabelChore,
	schema.LabelDocs,
	schema.LabelRefactor,
	schema.LabelTest,
	schema.LabelStyle,
	schema.LabelPerf,
	schema.LabelCI,
	schema.LabelBuild,
}

// labelRule pairs a predicate over the lowercased first line with the label
// it produces. Rules run in order; the first match wins.
type labelRule struct {
	label schema.Label
	match func(line string) bool
}

// messageRules classify a commit from its first line alone. Merge detection
// happens before these run, since it depends on the parent count rather than
// the message text.
var messageRules = buildMessageRules()

func buildMessageRules() []labelRule {
	rules := []labelRule{
		{schema.LabelRevert, isRevertLine},
		{schema.LabelRelease, isReleaseLine},
	}
	for _, prefix := range conventionalPrefixes {
		p := string(prefix)
		rules = append(rules, labelRule{prefix, func(line string) bool {
			return hasConventionalPrefix(line, p)
		}})
	}
	rules = append(rules,
		labelRule{schema.LabelFix, func(line string) bool {
			return strings.HasPrefix(line, "fixed ") || strings.HasPrefix(line, "fixed:")
		}},
		labelRule{schema.LabelFeat, func(line string) bool {
			return strings.HasPrefix(line, "added ") || strings.HasPrefix(line, "added:")
		}},
		labelRule{schema.LabelFix, func(line string) bool {
			return strings.HasPrefix(line, "bugfix") || strings.HasPrefix(line, "bug fix") || strings.HasPrefix(line, "hotfix")
		}},
		labelRule{schema.LabelFix, func(line string) bool {
			return strings.Contains(line, "fixes #") || strings.Contains(line, "fixed #") || strings.Contains(line, "closes #")
		}},
	)
	return rules
}

func isRevertLine(line string) bool {
	return strings.HasPrefix(line, `revert "`) ||
		strings.HasPrefix(line, "revert:") ||
		strings.HasPrefix(line, "revert(")
}

func isReleaseLine(line string) bool {
	if len(line) >= 2 && line[0] == 'v' && line[1] >= '0' && line[1] <= '9' {
		return true
	}
	return strings.Contains(line, "release") || strings.Contains(line, "bump version")
}

// hasConventionalPrefix reports whether line starts with the given commit type
// followed by end of line, a colon, a scope paren, a bang, or whitespace.
func hasConventionalPrefix(line, prefix string) bool {
	if !strings.HasPrefix(line, prefix) {
		return false
	}
	rest := line[len(prefix):]
	if rest == "" {
		return true
	}
	switch rest[0] {
	case ':', '(', '!', ' ', '\t':
		return true
	}
	return false
}

// Classify labels a commit message. Merge commits are detected from the
// parent count and always win. When the rules produce LabelOther, an
// optional external classifier gets a chance to improve the answer; its
// prediction is used only above the confidence floor.
func Classify(message string, parentCount int, ml contract.TextClassifier) schema.Label {
	if parentCount >= 2 {
		return schema.LabelMerge
	}

	line := strings.ToLower(firstLine(message))
	for _, rule := range messageRules {
		if rule.match(line) {
			return rule.label
		}
	}

	if ml != nil {
		if label, confidence, ok := ml.Classify(message); ok && confidence > schema.MLConfidenceFloor {
			return label
		}
	}
	return schema.LabelOther
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// ExtractTicketRef pulls an issue reference from the first line of a commit
// message. Bracketed JIRA keys win over bare ones; bare keys need word
// boundaries on both sides; issue-number forms come last. Returns empty when
// no reference is present.
func ExtractTicketRef(message string) string {
	line := firstLine(message)

	if ref := bracketedJiraKey(line); ref != "" {
		return ref
	}
	if ref := bareJiraKey(line); ref != "" {
		return ref
	}
	return issueNumberRef(line)
}

// bracketedJiraKey finds the first [XX-99] where the whole bracket interior
// is a JIRA key.
func bracketedJiraKey(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '[' {
			continue
		}
		end := strings.IndexByte(line[i+1:], ']')
		if end < 0 {
			return ""
		}
		interior := line[i+1 : i+1+end]
		if isJiraKey(interior) {
			return interior
		}
		i += end + 1
	}
	return ""
}

// bareJiraKey finds the first JIRA key token not glued to surrounding
// alphanumerics or a leading hyphen.
func bareJiraKey(line string) string {
	for i := 0; i < len(line); i++ {
		if !isUpperASCII(line[i]) {
			continue
		}
		if i > 0 && (isAlnumASCII(line[i-1]) || line[i-1] == '-') {
			continue
		}
		j := i
		for j < len(line) && isUpperASCII(line[j]) {
			j++
		}
		if j-i >= 2 && j < len(line) && line[j] == '-' {
			k := j + 1
			for k < len(line) && isDigitASCII(line[k]) {
				k++
			}
			if k > j+1 && (k == len(line) || !isAlnumASCII(line[k])) {
				return line[i:k]
			}
		}
		i = j
	}
	return ""
}

// issueNumberRef finds closing-keyword issue references first, then any bare
// #N token.
func issueNumberRef(line string) string {
	lower := strings.ToLower(line)
	for _, kw := range []string{"fixes #", "fixed #", "closes #", "closed #"} {
		if idx := strings.Index(lower, kw); idx >= 0 {
			start := idx + len(kw)
			if num := leadingDigits(line[start:]); num != "" {
				return "#" + num
			}
		}
	}

	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if num := leadingDigits(line[i+1:]); num != "" {
			return "#" + num
		}
	}
	return ""
}

func leadingDigits(s string) string {
	j := 0
	for j < len(s) && isDigitASCII(s[j]) {
		j++
	}
	return s[:j]
}

// isJiraKey reports whether s is exactly UPPER-UPPER...-digits with at least
// two letters and one digit.
func isJiraKey(s string) bool {
	dash := strings.IndexByte(s, '-')
	if dash < 2 || dash == len(s)-1 {
		return false
	}
	for i := range dash {
		if !isUpperASCII(s[i]) {
			return false
		}
	}
	for i := dash + 1; i < len(s); i++ {
		if !isDigitASCII(s[i]) {
			return false
		}
	}
	return true
}

func isUpperASCII(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigitASCII(b byte) bool { return b >= '0' && b <= '9' }

func isAlnumASCII(b byte) bool {
	return isDigitASCII(b) || isUpperASCII(b) || (b >= 'a' && b <= 'z')
}
