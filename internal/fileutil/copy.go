package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/FocuswithJustin/linekit/core/errors"
)

// CopyFile copies src to dst byte for byte, creating parent
// directories of dst as needed. The destination keeps the source's
// permission bits.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.NewIO("open", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.NewIO("stat", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.NewIO("create directory for", dst, err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return errors.NewIO("create", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return errors.NewIO("copy to", dst, err)
	}
	if err := out.Close(); err != nil {
		return errors.NewIO("close", dst, err)
	}
	return nil
}
