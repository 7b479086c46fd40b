package list

import (
	"fmt"

	"github.com/vsrinivas/ninja-test/pkg/ninjatest/core"
)

type Cmd struct {
}

func (cmd *Cmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing registered test cases")

	entries := suite.Entries()
	for _, entry := range entries {
		fmt.Println(entry.Name)
	}

	log.Infof("Found %d test cases", len(entries))
	return nil
}
