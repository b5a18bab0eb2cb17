// Package backup creates pre-mutation copies of files. A backup is
// either a verbatim <path>.bak copy or an xz-compressed <path>.bak.xz,
// always written before the original is touched. Every backup carries
// SHA-256 and BLAKE3 hashes of the original bytes so it can be
// verified after the fact.
package backup

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/linekit/core/errors"
	"github.com/FocuswithJustin/linekit/internal/fileutil"
)

// Suffixes appended to the original path.
const (
	Suffix   = ".bak"
	SuffixXZ = ".bak.xz"
)

// Info describes a written backup.
type Info struct {
	Original   string // Path the backup was taken from
	Path       string // Backup file path
	Compressed bool   // True when the backup is an xz stream
	SHA256     string // Hash of the original (uncompressed) bytes
	BLAKE3     string // Hash of the original (uncompressed) bytes
}

// Create copies the file at path to its backup location before any
// mutation. With compress set the copy is an xz stream of the original
// bytes. A missing source is not an error: there is nothing to
// preserve, and Create returns nil Info.
func Create(path string, compress bool) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &errors.BackupError{Path: path, Message: "cannot read original", Err: err}
	}

	sum256 := sha256.Sum256(data)
	sumB3 := blake3.Sum256(data)
	info := &Info{
		Original:   path,
		Compressed: compress,
		SHA256:     hex.EncodeToString(sum256[:]),
		BLAKE3:     hex.EncodeToString(sumB3[:]),
	}

	if compress {
		info.Path = path + SuffixXZ
		if err := writeXZ(info.Path, data); err != nil {
			return nil, &errors.BackupError{Path: path, BackupPath: info.Path, Message: err.Error(), Err: err}
		}
		return info, nil
	}

	info.Path = path + Suffix
	if err := fileutil.CopyFile(path, info.Path); err != nil {
		return nil, &errors.BackupError{Path: path, BackupPath: info.Path, Message: err.Error(), Err: err}
	}
	return info, nil
}

// Verify re-reads the backup described by info, decompressing if
// needed, and checks its content hashes against the ones recorded at
// creation time. A mismatch means the backup does not preserve the
// original bytes.
func Verify(info *Info) error {
	if info == nil {
		return nil
	}

	data, err := os.ReadFile(info.Path)
	if err != nil {
		return &errors.BackupError{Path: info.Original, BackupPath: info.Path, Message: "cannot read backup", Err: err}
	}

	if info.Compressed {
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return &errors.BackupError{Path: info.Original, BackupPath: info.Path, Message: "invalid xz stream", Err: err}
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return &errors.BackupError{Path: info.Original, BackupPath: info.Path, Message: "corrupt xz stream", Err: err}
		}
	}

	sum256 := sha256.Sum256(data)
	if hex.EncodeToString(sum256[:]) != info.SHA256 {
		return errors.NewBackup(info.Original, info.Path, "SHA-256 mismatch: backup does not match original")
	}
	sumB3 := blake3.Sum256(data)
	if hex.EncodeToString(sumB3[:]) != info.BLAKE3 {
		return errors.NewBackup(info.Original, info.Path, "BLAKE3 mismatch: backup does not match original")
	}
	return nil
}

func writeXZ(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		f.Close()
		os.Remove(path)
		return err
	}
	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
