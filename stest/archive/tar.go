package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path"

	"github.com/ulikunitz/xz"
)

// walkTar feeds every tar header to fn. It takes a plain reader so the
// compressed variants can wrap their decompressors around it.
func walkTar(r io.Reader, fn WalkFunc) error {
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()

		switch {
		// no more members
		case errors.Is(err, io.EOF):
			return nil

		case err != nil:
			return err

		case header == nil:
			continue
		}

		if err := fn(path.Clean(header.Name), header.FileInfo()); err != nil {
			return err
		}
	}
}

func walkTarFile(f *os.File, _ int64, fn WalkFunc) error {
	return walkTar(f, fn)
}

func walkTarGzip(f *os.File, _ int64, fn WalkFunc) error {
	zr, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer zr.Close()

	return walkTar(zr, fn)
}

func walkTarXz(f *os.File, _ int64, fn WalkFunc) error {
	xr, err := xz.NewReader(f)
	if err != nil {
		return err
	}

	return walkTar(xr, fn)
}
