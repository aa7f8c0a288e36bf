package main

import (
	"fmt"
	"os"

	"github.com/forestrie/go-h3dnames/binser"
	"github.com/forestrie/go-h3dnames/patricia"
	"github.com/fxamacker/cbor/v2"
	"github.com/urfave/cli/v2"
)

var cmdList = &cli.Command{
	Name:      "ls",
	Aliases:   []string{"list"},
	Usage:     "list the names in an encoded table, in index order",
	ArgsUsage: `<table-file>`,
	Flags:     tableFlags,
	Action:    runList,
}

var cmdNodes = &cli.Command{
	Name:      "nodes",
	Usage:     "dump the node array of an encoded table",
	ArgsUsage: `<table-file>`,
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "cbor",
			Usage: "write the node array to stdout as CBOR",
		},
	}, tableFlags...),
	Action: runNodes,
}

var cmdTree = &cli.Command{
	Name:      "tree",
	Usage:     "draw the branch structure of an encoded table",
	ArgsUsage: `<table-file>`,
	Flags:     tableFlags,
	Action:    runTree,
}

var cmdFind = &cli.Command{
	Name:      "find",
	Usage:     "print the index of a name in an encoded table",
	ArgsUsage: `<table-file> <name>`,
	Flags:     tableFlags,
	Action:    runFind,
}

func readTable(cctx *cli.Context) (*patricia.Tree, error) {
	path := cctx.Args().First()
	if path == "" {
		return nil, fmt.Errorf("need to provide a table file as an argument")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := binser.NewReader(data)
	if err := r.Seek(cctx.Int("offset")); err != nil {
		return nil, err
	}
	tree := patricia.New(patricia.WithLogger(cliLog()))
	if err := r.Deserialize(tree); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func runList(cctx *cli.Context) error {
	tree, err := readTable(cctx)
	if err != nil {
		return err
	}
	for i, name := range tree.All() {
		fmt.Fprintf(cctx.App.Writer, "%d\t%s\n", i, name)
	}
	return nil
}

func runNodes(cctx *cli.Context) error {
	tree, err := readTable(cctx)
	if err != nil {
		return err
	}
	nodes, err := tree.Nodes()
	if err != nil {
		return err
	}
	if !cctx.Bool("cbor") {
		fmt.Fprint(cctx.App.Writer, patricia.FormatNodes(nodes))
		return nil
	}

	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return err
	}
	b, err := em.Marshal(nodes)
	if err != nil {
		return err
	}
	_, err = cctx.App.Writer.Write(b)
	return err
}

func runTree(cctx *cli.Context) error {
	tree, err := readTable(cctx)
	if err != nil {
		return err
	}
	out, err := tree.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, out)
	return nil
}

func runFind(cctx *cli.Context) error {
	name := cctx.Args().Get(1)
	if name == "" {
		return fmt.Errorf("need to provide a name to find")
	}
	tree, err := readTable(cctx)
	if err != nil {
		return err
	}
	i, err := tree.FindIndex(name)
	if err != nil {
		return err
	}
	if i == patricia.NotFound {
		return fmt.Errorf("%w: %q", patricia.ErrKeyNotFound, name)
	}
	fmt.Fprintln(cctx.App.Writer, i)
	return nil
}
