package archive

import (
	"archive/zip"
	"os"
	"path"
)

func walkZip(f *os.File, size int64, fn WalkFunc) error {
	zr, err := zip.NewReader(f, size)
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
