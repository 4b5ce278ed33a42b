package output

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

type FileWriter struct {
	fullPath string
	logger   *zerolog.Logger
}

func NewFileWriter(path string, logger *zerolog.Logger) *FileWriter {
	return &FileWriter{
		fullPath: path,
		logger:   logger,
	}
}

// Write creates or truncates the file and stores data in it. A file left
// half-written by a failing write is not removed.
func (f *FileWriter) Write(data []byte) error {
	file, err := os.Create(f.fullPath)
	if err != nil {
		return errors.WithStack(&IOError{Path: f.fullPath, Err: err})
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return errors.WithStack(&IOError{Path: f.fullPath, Err: err})
	}
	if err := file.Close(); err != nil {
		return errors.WithStack(&IOError{Path: f.fullPath, Err: err})
	}

	f.logger.Info().
		Str("file", f.Filename()).
		Str("size", bytefmt.ByteSize(uint64(len(data)))).
		Msg("saved response body")
	return nil
}

func (f *FileWriter) Filename() string {
	return filepath.Base(f.fullPath)
}
