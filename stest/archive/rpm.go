package archive

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/cavaliergopher/cpio"
	"github.com/cavaliergopher/rpm"
	"github.com/ulikunitz/xz"
)

// walkRPM reads the package headers, then walks the cpio payload. Only cpio
// payloads in xz or gzip compression are supported.
func walkRPM(f *os.File, _ int64, fn WalkFunc) error {
	pkg, err := rpm.Read(f)
	if err != nil {
		return err
	}

	if format := pkg.PayloadFormat(); format != "cpio" {
		return fmt.Errorf("unsupported payload format: %s", format)
	}

	var cr io.Reader

	switch format := pkg.PayloadCompression(); format {
	case "xz":
		cr, err = xz.NewReader(f)
	case "gzip":
		cr, err = gzip.NewReader(f)
	default:
		return fmt.Errorf("unsupported rpm compression format: %s", format)
	}
	if err != nil {
		return err
	}

	cpr := cpio.NewReader(cr)

	for {
		header, err := cpr.Next()

		switch {
		// no more members
		case errors.Is(err, io.EOF):
			return nil

		case err != nil:
			return err
		}

		if err := fn(path.Clean(header.Name), header.FileInfo()); err != nil {
			return err
		}
	}
}
