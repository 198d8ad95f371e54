// Package locator locates a project's form file in the working directory or
// its parents and initializes new projects.
package locator

import (
	"bytes"
	"errors"
	"github.com/carldea/cognitive-sub001/defaults"
	"github.com/lefinal/meh"
	"go.uber.org/zap"
	"io"
	"io/fs"
	"os"
	"path"
)

// DefaultFormFilename is the filename a project's form file is expected under
// when none is provided explicitly.
const DefaultFormFilename = "form.yaml"

// Locator holds the resolved project context directory and form filename.
// Create one with New.
type Locator struct {
	contextDir   string
	formFilename string
}

// New creates a new Locator for the given context directory and form
// filename.
func New(contextDir string, formFilename string) (*Locator, error) {
	if contextDir == "" {
		return nil, meh.NewBadInputErr("missing context dir", nil)
	}
	if formFilename == "" {
		return nil, meh.NewBadInputErr("missing form filename", nil)
	}
	return &Locator{
		contextDir:   contextDir,
		formFilename: formFilename,
	}, nil
}

// ContextDir returns the project context directory.
func (locator *Locator) ContextDir() string {
	return locator.contextDir
}

// FormFilename returns the filename of the project's form file.
func (locator *Locator) FormFilename() string {
	return locator.formFilename
}

// AssureProject checks that the form file exists.
func (locator *Locator) AssureProject() error {
	_, err := os.Stat(locator.formFilename)
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "no form file found. did you initialize the project?", meh.Details{
			"form_filename": locator.formFilename,
		})
	}
	return nil
}

// InitProject initializes a project in the context directory by creating the
// default form file if none exists.
func (locator *Locator) InitProject(logger *zap.Logger) error {
	logger.Debug("create default form file", zap.String("filename", locator.formFilename))
	err := CreateIfNotExists(locator.formFilename, defaults.FormFile)
	if err != nil {
		return meh.Wrap(err, "create default form file", meh.Details{"filename": locator.formFilename})
	}
	return nil
}

// FindContextDir searches the given start directory and its parents for a
// directory containing the default form file and returns the first match.
func FindContextDir(startDir string) (string, error) {
	dir := startDir
	for {
		_, err := os.Stat(path.Join(dir, DefaultFormFilename))
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", meh.NewInternalErrFromErr(err, "stat form file", meh.Details{"dir": dir})
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", meh.NewNotFoundErr("no project found", meh.Details{"start_dir": startDir})
		}
		dir = parent
	}
}

// CreateIfNotExists creates the file with the given content unless it already
// exists.
func CreateIfNotExists(filename string, content []byte) error {
	_, err := os.Stat(filename)
	if err == nil {
		// Already exists.
		return nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "create file", nil)
	}
	defer func() { _ = f.Close() }()
	_, err = io.Copy(f, bytes.NewReader(content))
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "write file", nil)
	}
	err = f.Close()
	if err != nil {
		return meh.NewBadInputErrFromErr(err, "close written file", nil)
	}
	return nil
}
