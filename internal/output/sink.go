package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Sink is where rendered tables end up: stdout, or a file that only
// appears once it is completely written.
type Sink struct {
	path   string
	Stdout io.Writer
}

// New returns a sink for path; an empty path or "-" means stdout.
func New(path string) *Sink {
	if path == "-" {
		path = ""
	}
	return &Sink{path: path, Stdout: os.Stdout}
}

func (s *Sink) Path() string {
	if s.path == "" {
		return "stdout"
	}
	return s.path
}

func (s *Sink) Write(data []byte) error {
	if s.path == "" {
		_, err := s.Stdout.Write(data)
		return errors.Wrap(err, "write stdout")
	}
	return writeFileAtomic(s.path, data)
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err = tmp.Chmod(0644); err != nil {
		return errors.Wrapf(err, "chmod %s", tmp.Name())
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrapf(err, "close %s", tmp.Name())
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	return nil
}
