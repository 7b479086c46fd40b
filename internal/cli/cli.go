package cli

import (
	"os"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"

	"github.com/vsrinivas/ninja-test/internal/cli/list"
	"github.com/vsrinivas/ninja-test/internal/cli/run"
	"github.com/vsrinivas/ninja-test/internal/config"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
}

type cli struct {
	Global GlobalOpts `embed:""`
	List   list.Cmd   `cmd:"" help:"List registered test cases"`
	Run    run.Cmd    `cmd:"" help:"Run all registered test cases"`
}

// ParseCommandLine parses os.Args. Flags not given on the command line are
// looked up in the YAML configuration files.
func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	// Force display help if no arguments are provided
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	cli := cli{}
	ctx := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("Runs the test cases registered in this binary."),
		kong.Configuration(config.YAML, config.DefaultPaths()...),
	)
	return ctx, cli.Global
}
