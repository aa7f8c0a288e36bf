package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var tableFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "offset",
		Usage: "byte offset of the node array within the file (decimal or 0x hex)",
		Value: 0,
	},
}

func run(args []string) error {
	return newApp(os.Stdout).Run(args)
}

// newApp builds the command set. Command output goes to out.
func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "h3dnames",
		Writer:  out,
		Usage:   "build and inspect H3D PATRICIA name tables",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (DEBUG, INFO, ...)",
				Value:   "INFO",
				EnvVars: []string{"H3DNAMES_LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			logger.New(cctx.String("log-level"))
			return nil
		},
		After: func(cctx *cli.Context) error {
			logger.OnExit()
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdBuild,
		cmdList,
		cmdNodes,
		cmdTree,
		cmdFind,
	}
	return app
}

func cliLog() logger.Logger {
	return logger.Sugar.WithServiceName("h3dnames")
}
