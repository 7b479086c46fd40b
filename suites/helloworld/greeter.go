// Package helloworld implements a small example suite.
package helloworld

import (
	"fmt"
	"strings"
)

// Greeter is the code under test in this suite.
type Greeter struct {
	greeting string
	greeted  []string
}

func NewGreeter(greeting string) *Greeter {
	return &Greeter{greeting: greeting}
}

// Greet returns the greeting for name. Blank names are greeted as "world".
func (g *Greeter) Greet(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "world"
	}

	g.greeted = append(g.greeted, name)
	return fmt.Sprintf("%s, %s!", g.greeting, name)
}

// Count returns how many greetings were handed out.
func (g *Greeter) Count() int {
	return len(g.greeted)
}
