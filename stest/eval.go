package stest

import (
	"github.com/Nytelife26/wmenu/stest/config"
	"github.com/Nytelife26/wmenu/stest/model"
)

// Tests selects which predicates apply to each candidate. An inactive test is
// vacuously satisfied, so the verdict is the conjunction of the active tests,
// negated when Invert is set. Every test is a pure read: evaluation order
// carries no meaning and repeating it gives the same answer.
type Tests struct {
	Hidden      bool
	BlockDevice bool
	CharDevice  bool
	Dir         bool
	Exists      bool
	Regular     bool
	Setgid      bool
	Symlink     bool
	Newer       bool
	Older       bool
	Pipe        bool
	Readable    bool
	NonEmpty    bool
	Setuid      bool
	Writable    bool
	Executable  bool
	Invert      bool
}

// TestsFromConfig maps the flag surface onto the predicate set. The newer and
// older tests key off flag presence, not argument content, so an empty
// argument still activates them.
func TestsFromConfig(cfg *config.Config) Tests {
	return Tests{
		Hidden:      cfg.Hidden,
		BlockDevice: cfg.Block,
		CharDevice:  cfg.Char,
		Dir:         cfg.Dir,
		Exists:      cfg.Exists,
		Regular:     cfg.File,
		Setgid:      cfg.Setgid,
		Symlink:     cfg.Symlink,
		Newer:       cfg.NewerSet,
		Older:       cfg.OlderSet,
		Pipe:        cfg.Pipe,
		Readable:    cfg.Readable,
		NonEmpty:    cfg.NonEmpty,
		Setuid:      cfg.Setuid,
		Writable:    cfg.Writable,
		Executable:  cfg.Executable,
		Invert:      cfg.Invert,
	}
}

// Evaluate applies every active test to e. The newer and older references may
// be nil, in which case the corresponding test fails for every entry; the
// entry is then excluded unless Invert brings it back.
func (t Tests) Evaluate(e model.Entry, newer, older *model.Entry) bool {
	ok := (!t.Hidden || e.IsHidden()) &&
		(!t.BlockDevice || e.IsBlockDevice()) &&
		(!t.CharDevice || e.IsCharDevice()) &&
		(!t.Dir || e.IsDir()) &&
		(!t.Exists || e.Exists()) &&
		(!t.Regular || e.IsRegular()) &&
		(!t.Setgid || e.HasSetgid()) &&
		(!t.Symlink || e.IsSymlink()) &&
		(!t.Newer || isNewer(e, newer)) &&
		(!t.Older || isOlder(e, older)) &&
		(!t.Pipe || e.IsPipe()) &&
		(!t.Readable || e.IsReadable()) &&
		(!t.NonEmpty || e.IsNonEmpty()) &&
		(!t.Setuid || e.HasSetuid()) &&
		(!t.Writable || e.IsWritable()) &&
		(!t.Executable || e.IsExecutable())

	return ok != t.Invert
}

func isNewer(e model.Entry, ref *model.Entry) bool {
	return ref != nil && model.CompareModTime(e, *ref) == model.Greater
}

func isOlder(e model.Entry, ref *model.Entry) bool {
	return ref != nil && model.CompareModTime(e, *ref) == model.Less
}
