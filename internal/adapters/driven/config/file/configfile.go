package file

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"

	"github.com/custodia-labs/modmenu/internal/core/domain"
	"github.com/custodia-labs/modmenu/internal/core/ports/driven"
)

// Ensure ConfigFile implements the interface.
var _ driven.ConfigFile = (*ConfigFile)(nil)

// DefaultAppID names the config file when no app id is given.
const DefaultAppID = "modmenu"

// ConfigFile is a file-based implementation of driven.ConfigFile.
// The format (JSON, TOML or YAML) follows the file extension.
// Writes go to a temporary file that is renamed over the target.
type ConfigFile struct {
	filePath string
	codec    codec
}

// NewConfigFile creates a config file handle for <configDir>/<appID>.<format>.
// If configDir is empty, defaults to ~/.modmenu. The directory is created if needed.
func NewConfigFile(configDir, appID, format string) (*ConfigFile, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, "."+DefaultAppID)
	}
	if appID == "" {
		appID = DefaultAppID
	}

	c, err := codecForFormat(format)
	if err != nil {
		return nil, oops.In("configfile").With("format", format).Wrapf(err, "resolve codec")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigFile{
		filePath: filepath.Join(configDir, appID+"."+c.format()),
		codec:    c,
	}, nil
}

// OpenConfigFile creates a config file handle for an explicit path.
// The format is taken from the extension.
func OpenConfigFile(path string) (*ConfigFile, error) {
	c, err := codecForPath(path)
	if err != nil {
		return nil, oops.In("configfile").With("path", path).Wrapf(err, "resolve codec")
	}
	return &ConfigFile{filePath: path, codec: c}, nil
}

// Exists reports whether the file is present.
func (f *ConfigFile) Exists() bool {
	_, err := os.Stat(f.filePath)
	return err == nil
}

// Read decodes the file into a flat document.
func (f *ConfigFile) Read() (map[string]any, error) {
	data, err := os.ReadFile(f.filePath)
	if err != nil {
		return nil, oops.In("configfile").With("path", f.filePath).
			Wrapf(domain.ErrFileAccess, "read: %v", err)
	}

	doc, err := f.codec.unmarshal(data)
	if err != nil {
		return nil, oops.In("configfile").With("path", f.filePath, "format", f.codec.format()).
			Wrapf(domain.ErrParse, "decode: %v", err)
	}
	return doc, nil
}

// Write encodes doc and replaces the file.
func (f *ConfigFile) Write(doc map[string]any) error {
	data, err := f.codec.marshal(doc)
	if err != nil {
		return oops.In("configfile").With("path", f.filePath, "format", f.codec.format()).
			Wrapf(domain.ErrWrite, "encode: %v", err)
	}

	if err := writeAtomic(f.filePath, data, 0600); err != nil {
		return oops.In("configfile").With("path", f.filePath).
			Wrapf(domain.ErrWrite, "write: %v", err)
	}
	return nil
}

// Path returns the configuration file path.
func (f *ConfigFile) Path() string {
	return f.filePath
}

// Format returns the file format name.
func (f *ConfigFile) Format() string {
	return f.codec.format()
}

// writeAtomic writes data to a temp file beside path and renames it into place,
// so readers see either the old or the new contents.
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
