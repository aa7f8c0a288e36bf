package main

import (
	"bufio"
	"bytes"
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/forestrie/go-h3dnames/binser"
	"github.com/forestrie/go-h3dnames/patricia"
	"github.com/urfave/cli/v2"
)

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "encode a name table from a text file with one name per line",
	ArgsUsage: `<names.txt>`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "file path for the encoded table",
			Required: true,
		},
	},
	Action: runBuild,
}

func runBuild(cctx *cli.Context) error {
	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide a names file as an argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	log := cliLog()
	tree := patricia.New(patricia.WithLogger(log))
	for name := range readNames(data) {
		tree.Add(name)
	}

	w := binser.NewWriter()
	if err := w.WriteValue(tree); err != nil {
		return err
	}
	out := w.Bytes()
	if err := os.WriteFile(cctx.String("output"), out, 0o644); err != nil {
		return err
	}
	log.Infof("wrote %d names, %d bytes, to %s", tree.Len(), len(out), cctx.String("output"))
	return nil
}

// readNames yields each non blank line, without its line ending.
func readNames(data []byte) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			name := strings.TrimRight(sc.Text(), "\r")
			if name == "" {
				continue
			}
			if !yield(name) {
				return
			}
		}
	}
}
