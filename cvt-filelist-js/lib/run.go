package lib

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/presbrey/demo-tools/internal/listfile"
	"github.com/presbrey/demo-tools/internal/logging"
)

const (
	InputFileName  = "file_list.txt"
	OutputFileName = "list.js"
)

// Run converts dir/file_list.txt into dir/list.js and reports progress on stdout.
// Any I/O error is returned as is; a partially written list.js is left in place.
func Run(dir string, stdout io.Writer, logger *zap.Logger) error {
	inPath := filepath.Join(dir, InputFileName)
	names, err := readNameFile(inPath, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "num files = %d\n", len(names))
	fmt.Fprintln(stdout, "create out put js...")

	outPath := filepath.Join(dir, OutputFileName)
	if err := writeLiteralFile(outPath, names, logger); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "see %s file...\n", OutputFileName)
	return nil
}

func readNameFile(path string, logger *zap.Logger) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer logging.CloseOrDebug(logger, file)

	names, err := ReadNames(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	logger.Debug("read input", zap.String("path", path), zap.Int("names", len(names)))
	return names, nil
}

func writeLiteralFile(path string, names []string, logger *zap.Logger) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}

	counter := &listfile.CountingWriter{Delegate: file}
	err = WriteLiterals(counter, names)
	err = multierr.Append(err, file.Close())
	if err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	if ce := logger.Check(zap.DebugLevel, "wrote output"); ce != nil {
		info, err := listfile.GetFileInfo(path)
		if err != nil {
			return err
		}
		ce.Write(
			zap.String("path", path),
			zap.Int("literals", len(names)),
			zap.Int("bytes", counter.BytesWritten),
			zap.String("md5", info.Hash),
		)
	}
	return nil
}
