// Package archive expands archive files into their member entries, so that
// recursive mode can test an archive's contents the way it tests a
// directory's. Only header metadata is decoded; member content is never read.
package archive

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WalkFunc receives one archive member per call, info carrying the member's
// header metadata. Returning an error stops the walk and surfaces that error
// to the caller of Walk.
type WalkFunc func(path string, info fs.FileInfo) error

type walker func(f *os.File, size int64, fn WalkFunc) error

var walkers = map[string]walker{
	".tar": walkTarFile,
	".tgz": walkTarGzip,
	".gz":  walkTarGzip,
	".xz":  walkTarXz,
	".zip": walkZip,
	".7z":  walk7z,
	".rpm": walkRPM,
}

// Detect reports whether path names a file in a supported archive format.
func Detect(path string) bool {
	_, ok := walkers[filepath.Ext(path)]
	return ok
}

// Walk opens the archive at path and feeds every member to fn. The file
// handle is released on every return path, including an early stop from fn.
func Walk(path string, fn WalkFunc) error {
	w, ok := walkers[filepath.Ext(path)]
	if !ok {
		return fmt.Errorf("unsupported archive format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	return w(f, stat.Size(), fn)
}
