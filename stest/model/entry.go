package model

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Kind classifies an entry by its resolved file type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRegular
	KindDir
	KindSymlink
	KindBlockDevice
	KindCharDevice
	KindPipe
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	case KindBlockDevice:
		return "block device"
	case KindCharDevice:
		return "char device"
	case KindPipe:
		return "pipe"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// KindFromMode derives the Kind from the mode's type bits. Character devices
// carry the device bit as well, so they are checked first.
func KindFromMode(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDir
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	case mode&fs.ModeDevice != 0:
		return KindBlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return KindPipe
	default:
		return KindOther
	}
}

// Entry is one candidate path plus its lazily queried attributes. Every
// metadata query is independently fallible: when one fails, the tests that
// depend on it answer false instead of aborting the evaluation.
type Entry struct {
	path string
	info fs.FileInfo
}

// New returns an Entry whose attributes are queried live from the filesystem
// on every call, so repeated queries observe the current state.
func New(path string) Entry {
	return Entry{path: path}
}

// FromInfo returns an Entry that answers every metadata query from info
// instead of the filesystem. Archive members have no presence of their own,
// so their header metadata stands in for stat results.
func FromInfo(path string, info fs.FileInfo) Entry {
	return Entry{path: path, info: info}
}

func (e Entry) Path() string {
	return e.path
}

// stat follows symlinks, lstat does not.
func (e Entry) stat() (fs.FileInfo, error) {
	if e.info != nil {
		return e.info, nil
	}
	return os.Stat(e.path)
}

func (e Entry) lstat() (fs.FileInfo, error) {
	if e.info != nil {
		return e.info, nil
	}
	return os.Lstat(e.path)
}

func (e Entry) mode() (fs.FileMode, bool) {
	fi, err := e.stat()
	if err != nil {
		return 0, false
	}
	return fi.Mode(), true
}

// Kind reports the resolved file type, following symlinks. A failed metadata
// query yields KindUnknown.
func (e Entry) Kind() Kind {
	fi, err := e.stat()
	if err != nil {
		return KindUnknown
	}
	return KindFromMode(fi.Mode())
}

// IsHidden reports whether the basename starts with a dot. It is a pure
// string check and never touches the filesystem; paths without a basename,
// such as "/", "." and "..", are never hidden.
func (e Entry) IsHidden() bool {
	name := filepath.Base(e.path)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// Exists reports whether the path resolves, following symlinks. Any stat
// error counts as non-existent, not just not-found.
func (e Entry) Exists() bool {
	_, err := e.stat()
	return err == nil
}

func (e Entry) IsRegular() bool {
	return e.Kind() == KindRegular
}

func (e Entry) IsDir() bool {
	return e.Kind() == KindDir
}

func (e Entry) IsBlockDevice() bool {
	return e.Kind() == KindBlockDevice
}

func (e Entry) IsCharDevice() bool {
	return e.Kind() == KindCharDevice
}

func (e Entry) IsPipe() bool {
	return e.Kind() == KindPipe
}

// IsSymlink reports whether the path itself is a symbolic link. It does not
// follow the link, so it is true for dangling links as well.
func (e Entry) IsSymlink() bool {
	fi, err := e.lstat()
	if err != nil {
		return false
	}
	return fi.Mode()&fs.ModeSymlink != 0
}

func (e Entry) HasSetuid() bool {
	m, ok := e.mode()
	return ok && m&fs.ModeSetuid != 0
}

func (e Entry) HasSetgid() bool {
	m, ok := e.mode()
	return ok && m&fs.ModeSetgid != 0
}

// IsReadable reports whether any read bit is set. Like test(1) -r on mode
// bits alone, this ignores the calling user's identity.
func (e Entry) IsReadable() bool {
	return e.hasPermBit(0o444)
}

func (e Entry) IsWritable() bool {
	return e.hasPermBit(0o222)
}

func (e Entry) IsExecutable() bool {
	return e.hasPermBit(0o111)
}

func (e Entry) hasPermBit(mask fs.FileMode) bool {
	m, ok := e.mode()
	return ok && m.Perm()&mask != 0
}

// IsNonEmpty reports a size strictly greater than zero.
func (e Entry) IsNonEmpty() bool {
	fi, err := e.stat()
	return err == nil && fi.Size() > 0
}

// ModTime reports the modification time; ok is false when the metadata is
// unavailable.
func (e Entry) ModTime() (mtime time.Time, ok bool) {
	fi, err := e.stat()
	if err != nil {
		return time.Time{}, false
	}
	return fi.ModTime(), true
}
