// Package stest evaluates a conjunction of file tests against a list of
// candidate paths, printing the paths that pass and reporting the outcome
// through an exit status.
package stest

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/inconshreveable/log15"
	"github.com/karrick/godirwalk"

	"github.com/Nytelife26/wmenu/stest/archive"
	"github.com/Nytelife26/wmenu/stest/config"
	"github.com/Nytelife26/wmenu/stest/model"
)

// Exit statuses shared with the command layer.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
	ExitUsage   = 2
)

// errStop signals that quiet mode found its match and the rest of the run
// must be skipped. It travels through the walks' ordinary error paths, so
// every open handle is released before the process gets to exit.
var errStop = errors.New("stest: first match found")

// Runner drives one evaluation pass over a candidate list. It owns the
// process-wide match state; there is no other mutable state.
type Runner struct {
	cfg   *config.Config
	tests Tests
	newer *model.Entry
	older *model.Entry
	out   io.Writer
	log   log15.Logger

	matched bool
	stopped bool
}

// NewRunner builds a Runner writing matches to out, resolving the newer and
// older reference entries once up front. An empty reference path leaves the
// corresponding test active with nothing to satisfy.
func NewRunner(cfg *config.Config, out io.Writer, logger log15.Logger) *Runner {
	r := &Runner{
		cfg:   cfg,
		tests: TestsFromConfig(cfg),
		out:   out,
		log:   logger,
	}

	if cfg.Newer != "" {
		e := model.New(cfg.Newer)
		r.newer = &e
	}

	if cfg.Older != "" {
		e := model.New(cfg.Older)
		r.older = &e
	}

	return r
}

// Run evaluates every candidate in order and reports the exit status:
// ExitMatch when at least one candidate passed, ExitNoMatch otherwise. Quiet
// mode stops at the first pass, leaving later candidates unevaluated.
func (r *Runner) Run(paths []string) int {
	for _, path := range paths {
		if r.testPath(path); r.stopped {
			break
		}
	}

	r.log.Debug("evaluation finished", "candidates", len(paths), "matched", r.matched)

	if r.matched {
		return ExitMatch
	}

	return ExitNoMatch
}

// testPath expands the candidate when recursion applies, otherwise tests the
// path itself.
func (r *Runner) testPath(path string) {
	entry := model.New(path)

	switch {
	case r.cfg.Recurse && entry.IsDir():
		r.walkDir(path)
	case r.cfg.Recurse && archive.Detect(path):
		r.walkArchive(path)
	default:
		// the stop state is checked by the caller
		_ = r.test(entry)
	}
}

// walkDir tests everything under root, root itself excluded. A root that is
// a symlink to a directory is walked through its target, with reported paths
// keeping the candidate as their prefix. Unreadable entries are skipped and
// the walk carries on; only the quiet-mode stop halts it early.
func (r *Runner) walkDir(root string) {
	root = filepath.Clean(root)

	// godirwalk refuses symlink roots, so resolve the target up front.
	target := root
	if model.New(root).IsSymlink() {
		resolved, err := filepath.EvalSymlinks(root)
		if err != nil {
			r.log.Debug("directory walk ended early", "path", root, "err", err)
			return
		}

		target = resolved
	}

	r.log.Debug("walking directory", "path", root)

	err := godirwalk.Walk(target, &godirwalk.Options{
		Callback: func(path string, _ *godirwalk.Dirent) error {
			if path == target {
				return nil
			}

			if target != root {
				path = filepath.Join(root, strings.TrimPrefix(path, target))
			}

			return r.test(model.New(path))
		},
		ErrorCallback: func(_ string, _ error) godirwalk.ErrorAction {
			if r.stopped {
				return godirwalk.Halt
			}

			return godirwalk.SkipNode
		},
	})
	if err != nil && !r.stopped {
		r.log.Debug("directory walk ended early", "path", root, "err", err)
	}
}

// walkArchive tests the archive's members, named as paths below the archive
// file. Decode errors end the expansion quietly, the same policy as an
// unreadable directory.
func (r *Runner) walkArchive(root string) {
	r.log.Debug("walking archive", "path", root)

	err := archive.Walk(root, func(member string, info fs.FileInfo) error {
		return r.test(model.FromInfo(filepath.Join(root, member), info))
	})
	if err != nil && !errors.Is(err, errStop) {
		r.log.Debug("archive walk ended early", "path", root, "err", err)
	}
}

// test runs one entry through the path filters and the predicate engine,
// printing and recording a pass. It returns errStop only for the quiet-mode
// early exit.
func (r *Runner) test(e model.Entry) error {
	if r.stopped || !r.cfg.Keep(e.Path()) {
		return nil
	}

	if !r.tests.Evaluate(e, r.newer, r.older) {
		return nil
	}

	r.matched = true

	if r.cfg.Quiet {
		r.stopped = true
		return errStop
	}

	fmt.Fprintln(r.out, e.Path())

	return nil
}
