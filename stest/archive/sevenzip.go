package archive

import (
	"os"
	"path"

	"github.com/bodgit/sevenzip"
)

func walk7z(f *os.File, size int64, fn WalkFunc) error {
	zr, err := sevenzip.NewReader(f, size)
	if err != nil {
		return err
	}

	for _, member := range zr.File {
		if err := fn(path.Clean(member.Name), member.FileInfo()); err != nil {
			return err
		}
	}

	return nil
}
