// Package interpolate substitutes answers into path segments.
package interpolate

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/stampcli/stamp/cli/answers"
	"github.com/stampcli/stamp/cli/errs"
)

// markerRe matches any `{{ ... }}` marker. Only `{{ id }}` and `{{ .id }}` are
// supported in paths, spaces are optional.
var markerRe = regexp.MustCompile(`\{\{(.*?)\}\}`)

var idRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// HasMarkers returns true if the text contains interpolation markers.
func HasMarkers(text string) bool {
	return markerRe.MatchString(text)
}

// Segment substitutes answers into a single path segment.
func Segment(segment string, values answers.Map) (string, error) {
	var firstErr error
	result := markerRe.ReplaceAllStringFunc(segment, func(marker string) string {
		if firstErr != nil {
			return marker
		}
		id := strings.TrimPrefix(strings.TrimSpace(markerRe.FindStringSubmatch(marker)[1]), ".")
		if !idRe.MatchString(id) {
			firstErr = errs.New(errs.UnknownVariable,
				"unsupported marker %q in path segment %q, expected {{ name }}", marker, segment)
			return marker
		}
		value, err := segmentValue(segment, id, values)
		if err != nil {
			firstErr = err
			return marker
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}

	if result == "" || result == "." || result == ".." {
		return "", errs.New(errs.InvalidPathSegment,
			"path segment %q is substituted to %q", segment, result)
	}
	return result, nil
}

func segmentValue(segment, id string, values answers.Map) (string, error) {
	answer, found := values[id]
	if !found {
		return "", errs.New(errs.UnknownVariable,
			"unknown variable %q in path segment %q", id, segment)
	}

	var value string
	switch answer := answer.(type) {
	case answers.Text:
		value = string(answer)
	case answers.Choice:
		value = string(answer)
	case answers.Choices:
		return "", errs.New(errs.UnsupportedValueType,
			"multi-select answer %q cannot be used in path segment %q", id, segment)
	default:
		return "", errs.New(errs.UnsupportedValueType,
			"answer %q of type %T cannot be used in path segment %q", id, answer, segment)
	}

	if strings.ContainsAny(value, `/\`) {
		return "", errs.New(errs.InvalidPathSegment,
			"value %q of %q contains a path separator", value, id)
	}
	if strings.ContainsRune(value, 0) {
		return "", errs.New(errs.InvalidPathSegment,
			"value of %q contains a NUL character", id)
	}
	return value, nil
}

// Path substitutes answers into every segment of the relative path. The result is
// a local path: it never escapes the directory it is joined to.
func Path(relPath string, values answers.Map) (string, error) {
	if relPath == "" || relPath == "." {
		return relPath, nil
	}
	if !filepath.IsLocal(relPath) {
		return "", errs.New(errs.InvalidPathSegment, "path %q is not relative", relPath)
	}

	segments := strings.Split(filepath.ToSlash(relPath), "/")
	for i, segment := range segments {
		if !HasMarkers(segment) {
			continue
		}
		substituted, err := Segment(segment, values)
		if err != nil {
			return "", err
		}
		segments[i] = substituted
	}

	result := filepath.Join(segments...)
	if !filepath.IsLocal(result) {
		return "", errs.New(errs.InvalidPathSegment,
			"path %q is substituted to non-local path %q", relPath, result)
	}
	return result, nil
}
