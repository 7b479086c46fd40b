package devops

import "fmt"

// Groups function as a stack, so we keep track of the groups in a stack.
var groups = make([]*Group, 0)

// Opens a new collapsible section in the pipeline log and adds it to the
// stack. The runner opens one per test case.
func OpenGroup(name string) *Group {
	newGroup := &Group{name: name}
	groups = append(groups, newGroup)
	logCreateGroup(name)
	return newGroup
}

func logCreateGroup(name string) {
	fmt.Fprintf(Output, "##[group]%s\n", name)
}

func logEndGroup() {
	fmt.Fprintln(Output, "##[endgroup]")
}

type Group struct {
	name string
}

func (g *Group) Name() string {
	return g.name
}

// Closes the group and removes all groups above it from the stack.
// This is done by popping the stack until we reach the group we want to close.
func (g *Group) Close() {
	var index int = len(groups) - 1
	for index >= 0 {
		// Pop the last group from the stack
		last := groups[index]
		groups = groups[:index]
		logEndGroup()
		if last == g {
			break
		}
		index--
	}
}
