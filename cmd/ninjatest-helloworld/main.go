package main

import (
	"github.com/vsrinivas/ninja-test/pkg/ninjatest"
	"github.com/vsrinivas/ninja-test/suites/helloworld"
)

func main() {
	suite := ninjatest.CreateSuite("hello-world")

	suite.AddRegistrant(helloworld.GreeterTests{})
	suite.AddRegistrant(helloworld.DemoTests{})

	suite.Run()
}
