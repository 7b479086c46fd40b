package devops

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

// Destination of all Azure DevOps logging commands.
var Output io.Writer = os.Stdout

func LogError(msg string, a ...any) {
	fmt.Fprintf(Output, "##vso[task.logissue type=error]%s\n", fmt.Sprintf(msg, a...))
}

// Logging command properties end at ';' or ']'.
var propertyEscaper = strings.NewReplacer(";", "%3B", "]", "%5D", "\r", "%0D", "\n", "%0A")

// FailureSink reports failed checks as pipeline errors annotated with their
// source location.
type FailureSink struct{}

func (FailureSink) ReportFailure(f core.Failure) {
	fmt.Fprintf(
		Output,
		"##vso[task.logissue type=error;sourcepath=%s;linenumber=%d]%s: %s\n",
		propertyEscaper.Replace(f.File),
		f.Line,
		f.Test,
		strings.ReplaceAll(f.Expression, "\n", " "),
	)
}
