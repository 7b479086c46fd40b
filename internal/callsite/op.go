package callsite

import (
	"fmt"
	"strings"
)

// Op identifies the kind of check issued at a call site.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterOrEqual
	OpLessOrEqual
	OpTrue
	OpFalse
	OpNoFatalFailure
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterOrEqual:
		return ">="
	case OpLessOrEqual:
		return "<="
	case OpTrue:
		return "true"
	case OpFalse:
		return "false"
	case OpNoFatalFailure:
		return "no fatal failure"
	default:
		return "unknown"
	}
}

// Number of operands rendered for this op.
func (op Op) arity() int {
	switch op {
	case OpTrue, OpFalse, OpNoFatalFailure:
		return 1
	default:
		return 2
	}
}

func (op Op) placeholders() []string {
	switch op {
	case OpTrue, OpFalse:
		return []string{"value"}
	case OpNoFatalFailure:
		return []string{"fn"}
	default:
		return []string{"lhs", "rhs"}
	}
}

// Format renders the checked expression from the source text of its
// operands.
func (op Op) Format(operands ...string) string {
	if len(operands) != op.arity() {
		operands = op.placeholders()
	}

	switch op {
	case OpTrue:
		return operands[0]
	case OpFalse:
		return fmt.Sprintf("!(%s)", operands[0])
	case OpNoFatalFailure:
		return fmt.Sprintf("no fatal failure in %s", operands[0])
	default:
		return strings.Join([]string{operands[0], op.String(), operands[1]}, " ")
	}
}
