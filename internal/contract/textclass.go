package contract

import (
	"bytes"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/huangsam/gitintel/schema"
)

// NoopClassifier never produces a prediction. It is the default when no
// external model command is configured.
type NoopClassifier struct{}

var _ TextClassifier = NoopClassifier{} // Compile-time check

// Classify implements the TextClassifier interface.
func (NoopClassifier) Classify(string) (schema.Label, float64, bool) {
	return "", 0, false
}

// ExecClassifier shells out to an external model command. The commit message
// is written to stdin and a single JSON object is expected on stdout:
//
//	{"label": "fix", "confidence": 0.87}
//
// Any failure, malformed output, or unknown label degrades to no prediction.
type ExecClassifier struct {
	Command string
	Args    []string
}

var _ TextClassifier = &ExecClassifier{} // Compile-time check

// NewExecClassifier builds a classifier from a shell-style command string.
// An empty command yields a NoopClassifier.
func NewExecClassifier(command string) TextClassifier {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return NoopClassifier{}
	}
	return &ExecClassifier{Command: fields[0], Args: fields[1:]}
}

type execPrediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classify implements the TextClassifier interface.
func (c *ExecClassifier) Classify(message string) (schema.Label, float64, bool) {
	cmd := exec.Command(c.Command, c.Args...)
	cmd.Stdin = strings.NewReader(message)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", 0, false
	}

	var pred execPrediction
	if err := json.Unmarshal(stdout.Bytes(), &pred); err != nil {
		return "", 0, false
	}

	label := schema.Label(strings.ToLower(pred.Label))
	if !knownLabels[label] {
		return "", 0, false
	}
	return label, pred.Confidence, true
}

// knownLabels restricts external predictions to the closed taxonomy.
var knownLabels = map[schema.Label]bool{
	schema.LabelFeat:     true,
	schema.LabelFix:      true,
	schema.LabelChore:    true,
	schema.LabelDocs:     true,
	schema.LabelRefactor: true,
	schema.LabelTest:     true,
	schema.LabelStyle:    true,
	schema.LabelPerf:     true,
	schema.LabelCI:       true,
	schema.LabelBuild:    true,
}
