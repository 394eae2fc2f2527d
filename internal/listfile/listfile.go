package listfile

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileInfo stores information about a generated or consumed list file
type FileInfo struct {
	Name    string
	Mode    os.FileMode
	Path    string
	Size    int64
	ModTime time.Time
	Hash    string
}

// GetFileInfo retrieves size, modification time and MD5 hash for a file
func GetFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	hash, err := calculateMD5(path)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Path:    path,
		ModTime: stat.ModTime(),
		Hash:    hash,
		Size:    stat.Size(),
		Name:    stat.Name(),
		Mode:    stat.Mode(),
	}, nil
}

// calculateMD5 computes the MD5 hash of a file
func calculateMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, f); err != nil {
		return "", errors.Wrapf(err, "hash %s", path)
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}

// CountingWriter passes writes through to Delegate and keeps a running total
type CountingWriter struct {
	Delegate     io.Writer
	BytesWritten int
}

func (w *CountingWriter) Write(p []byte) (int, error) {
	n, err := w.Delegate.Write(p)
	w.BytesWritten += n
	return n, err
}
