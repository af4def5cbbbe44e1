package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/celestiaorg/lmt/internal/leafinput"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lmt",
		Usage: "Build, prove and update layered Merkle trees",
		Description: `Reads leaves from a JSON file (--leaves) or a leaf store (--db) and
combines them pairwise with the selected hasher. The last node of an odd layer
is carried up unchanged.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "leaves",
				Aliases: []string{"l"},
				Usage:   "JSON file holding the leaves",
				EnvVars: []string{"LMT_LEAVES"},
			},
			&cli.StringFlag{
				Name:    "json-path",
				Value:   leafinput.DefaultPath,
				Usage:   "gjson path of the leaf array inside --leaves; a top-level array is found under the default path or an empty one",
				EnvVars: []string{"LMT_JSON_PATH"},
			},
			&cli.StringFlag{
				Name:    "hasher",
				Value:   "mimc",
				Usage:   "combiner: concat, keccak256, mimc or sha256",
				EnvVars: []string{"LMT_HASHER"},
			},
			&cli.IntFlag{
				Name:    "cache-size",
				Value:   0,
				Usage:   "number of combine results to memoize (0 disables the cache)",
				EnvVars: []string{"LMT_CACHE_SIZE"},
			},
			&cli.StringFlag{
				Name:    "db",
				Usage:   "badger directory used to load and persist leaf sets",
				EnvVars: []string{"LMT_DB"},
			},
			&cli.StringFlag{
				Name:    "name",
				Value:   "default",
				Usage:   "name of the leaf set inside --db",
				EnvVars: []string{"LMT_NAME"},
			},
			&cli.BoolFlag{
				Name:    "metrics",
				Usage:   "Write the combiner metrics in Prometheus text format to stderr on exit",
				EnvVars: []string{"LMT_METRICS"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{"LMT_VERBOSE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "Print the root",
				Action: runRoot,
			},
			{
				Name:  "path",
				Usage: "Print the Merkle path of a leaf, one sibling per line",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Required: true},
				},
				Action: runPath,
			},
			{
				Name:  "update",
				Usage: "Replace a leaf and print the new root; persists to --db when set",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Required: true},
					&cli.StringFlag{Name: "value", Required: true},
				},
				Action: runUpdate,
			},
			{
				Name:  "verify",
				Usage: "Verify a Merkle path against a root",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "index", Aliases: []string{"i"}, Required: true},
					&cli.IntFlag{Name: "total", Usage: "number of leaves of the tree", Required: true},
					&cli.StringFlag{Name: "leaf", Required: true},
					&cli.StringFlag{Name: "root", Required: true},
					&cli.StringSliceFlag{Name: "path", Usage: "sibling hashes, leaf level first"},
				},
				Action: runVerify,
			},
			{
				Name:   "save",
				Usage:  "Store the leaves of --leaves under --name in --db",
				Action: runSave,
			},
			{
				Name:   "demo",
				Usage:  "Build a four leaf tree, prove leaf 0 and update it",
				Action: runDemo,
			},
		},
	}
}
