package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/celestiaorg/lmt"
	"github.com/celestiaorg/lmt/hashers"
	"github.com/celestiaorg/lmt/internal/leafinput"
	"github.com/celestiaorg/lmt/storage"
)

var (
	errNoLeaves     = errors.New("either --leaves or --db is required")
	errNoStore      = errors.New("--db is required")
	errInvalidProof = errors.New("proof does not verify")
)

var demoLeaves = []lmt.Hash{"1234", "2345", "7545", "4564"}

// session holds what every command needs, built from the global flags.
type session struct {
	logger   *zap.Logger
	hasher   string
	combiner lmt.Combiner
	store    storage.LeafStorer
	// metrics receives the combiner metrics on Close, nil when disabled.
	metrics io.Writer
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func setup(c *cli.Context) (*session, error) {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	hasher := c.String("hasher")
	base, err := hashers.ByName(hasher)
	if err != nil {
		return nil, err
	}
	var combiner lmt.Combiner = hashers.NewInstrumented(base, hasher)
	if size := c.Int("cache-size"); size > 0 {
		combiner, err = hashers.NewCached(combiner, size)
		if err != nil {
			return nil, err
		}
	}

	rt := &session{
		logger:   logger,
		hasher:   hasher,
		combiner: combiner,
	}
	if c.Bool("metrics") {
		rt.metrics = c.App.ErrWriter
	}
	if dir := c.String("db"); dir != "" {
		rt.store, err = storage.OpenBadger(dir, logger)
		if err != nil {
			return nil, err
		}
	}
	return rt, nil
}

func (rt *session) Close() {
	if rt.metrics != nil {
		if err := writeMetrics(rt.metrics, prometheus.DefaultGatherer); err != nil {
			rt.logger.Error("failed to write metrics", zap.Error(err))
		}
	}
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.logger.Error("failed to close leaf store", zap.Error(err))
		}
	}
	_ = rt.logger.Sync()
}

// writeMetrics writes the lmt_ metric families of g in the Prometheus text
// format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "lmt_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// tree builds the tree from --leaves, falling back to the leaf set stored
// under --name.
func (rt *session) tree(c *cli.Context) (*lmt.MerkleTree, error) {
	start := time.Now()
	var (
		tree *lmt.MerkleTree
		err  error
	)
	switch {
	case c.String("leaves") != "":
		var leaves []lmt.Hash
		leaves, err = leafinput.ParseFile(c.String("leaves"), c.String("json-path"))
		if err != nil {
			return nil, err
		}
		tree, err = lmt.New(leaves, rt.combiner, lmt.WithLogger(rt.logger))
	case rt.store != nil:
		tree, err = storage.Load(rt.store, c.String("name"), rt.combiner, lmt.WithLogger(rt.logger))
	default:
		return nil, errNoLeaves
	}
	if err != nil {
		return nil, err
	}
	rt.logger.Info("tree ready",
		zap.String("hasher", rt.hasher),
		zap.Int("leaves", tree.Size()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return tree, nil
}

func withSession(c *cli.Context, fn func(rt *session) error) error {
	rt, err := setup(c)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	defer rt.Close()
	return fn(rt)
}

func runRoot(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		tree, err := rt.tree(c)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, tree.Root())
		return nil
	})
}

func runPath(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		tree, err := rt.tree(c)
		if err != nil {
			return err
		}
		path, err := tree.MerklePath(c.Int("index"))
		if err != nil {
			return err
		}
		for _, node := range path {
			fmt.Fprintln(c.App.Writer, node)
		}
		return nil
	})
}

func runUpdate(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		tree, err := rt.tree(c)
		if err != nil {
			return err
		}
		if err := tree.UpdateLeaf(c.Int("index"), lmt.Hash(c.String("value"))); err != nil {
			return err
		}
		if rt.store != nil {
			if err := storage.Save(rt.store, c.String("name"), rt.hasher, tree); err != nil {
				return err
			}
		}
		fmt.Fprintln(c.App.Writer, tree.Root())
		return nil
	})
}

func runVerify(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		raw := c.StringSlice("path")
		path := make([]lmt.Hash, len(raw))
		for i, node := range raw {
			path[i] = lmt.Hash(node)
		}
		ok, err := lmt.VerifyPath(
			rt.combiner,
			lmt.Hash(c.String("root")),
			lmt.Hash(c.String("leaf")),
			c.Int("index"),
			c.Int("total"),
			path,
		)
		if err != nil {
			return err
		}
		if !ok {
			return errInvalidProof
		}
		fmt.Fprintln(c.App.Writer, "valid")
		return nil
	})
}

func runSave(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		if rt.store == nil {
			return errNoStore
		}
		if c.String("leaves") == "" {
			return errNoLeaves
		}
		tree, err := rt.tree(c)
		if err != nil {
			return err
		}
		if err := storage.Save(rt.store, c.String("name"), rt.hasher, tree); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, tree.Root())
		return nil
	})
}

func runDemo(c *cli.Context) error {
	return withSession(c, func(rt *session) error {
		tree, err := lmt.New(demoLeaves, rt.combiner, lmt.WithLogger(rt.logger))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Merkle Root: %s\n", tree.Root())

		path, err := tree.MerklePath(0)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Merkle Path for leaf 0: %v\n", path)

		if err := tree.UpdateLeaf(0, "63453"); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Updated Merkle Root: %s\n", tree.Root())
		return nil
	})
}
