package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"

	"github.com/apex/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

// ArgError represents command line arguments error.
type ArgError struct {
	msg string
}

// Error returns error message.
func (e ArgError) Error() string {
	return e.msg
}

// NewArgError creates and returns new argument error.
func NewArgError(text string) error {
	return &ArgError{text}
}

// VersionFunc is a type of function that return
// string with current stamp version.
type VersionFunc func(bool, bool) string

// JoinPaths joins paths. An absolute element discards the elements before it.
func JoinPaths(paths ...string) string {
	for i := len(paths) - 1; i > 0; i-- {
		if filepath.IsAbs(paths[i]) {
			return filepath.Join(paths[i:]...)
		}
	}
	return filepath.Join(paths...)
}

// JoinAbspath joins paths like JoinPaths and makes the result absolute.
func JoinAbspath(paths ...string) (string, error) {
	absPath, err := filepath.Abs(JoinPaths(paths...))
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %s", err)
	}
	return absPath, nil
}

// InternalError shows error information, version of stamp and stacktrace.
// Is used when the error is a bug in stamp itself.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	errorFmt := `whoops! It looks like something is wrong with this version of stamp.
Error: %s
Version: %s
Stacktrace:
%s`
	version := f(false, false)

	return fmt.Errorf(errorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// ParseYAML reads a YAML mapping from the file.
func ParseYAML(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %s", path, err)
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %q: %s", path, err)
	}
	return raw, nil
}

// FindNamedMatches matches str against re and returns named groups by name.
// An optional group that did not participate maps to an empty string.
func FindNamedMatches(re *regexp.Regexp, str string) map[string]string {
	res := map[string]string{}
	match := re.FindStringSubmatch(str)
	if match == nil {
		return res
	}
	for i, name := range re.SubexpNames() {
		if i > 0 {
			res[name] = match[i]
		}
	}
	return res
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file exists
// and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// IsEmptyDir returns true if dirPath is a directory without entries.
func IsEmptyDir(dirPath string) (bool, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// RelativeToCurrentWorkingDir returns a path relative to current working dir.
// In case of error, fullpath is returned.
func RelativeToCurrentWorkingDir(fullpath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(cwd, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

// WriteFileAtomic writes data to a temporary file next to fileName and renames
// it to fileName. Readers see either the old or the new content.
func WriteFileAtomic(fileName string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(fileName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpName := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(fileName),
		uuid.NewString()))
	tmpFile, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	removeTmp := true
	defer func() {
		if removeTmp {
			if err := os.Remove(tmpName); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warnf("Failed to remove temporary file %s: %s", tmpName, err)
			}
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err = tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, fileName); err != nil {
		return fmt.Errorf("failed to replace %s: %w", fileName, err)
	}
	removeTmp = false
	return nil
}

// WriteYamlAtomic encodes o as YAML and atomically writes it to fileName.
func WriteYamlAtomic(fileName string, o interface{}) error {
	data, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	return WriteFileAtomic(fileName, data, 0o644)
}
