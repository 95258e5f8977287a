// Package manifest loads template descriptors: the template name, description
// and the ordered list of questions to ask before rendering.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	goVersion "github.com/hashicorp/go-version"
	"github.com/mitchellh/mapstructure"
	"github.com/stampcli/stamp/cli/errs"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDescriptorName is a template metadata file name.
	DefaultDescriptorName = "stamp.yaml"
	// altDescriptorName is accepted as well.
	altDescriptorName = "stamp.yml"
)

// DescriptorNames contains all accepted metadata file names.
var DescriptorNames = []string{DefaultDescriptorName, altDescriptorName}

var idPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Descriptor is a parsed template metadata file.
type Descriptor struct {
	// Name is a template name. Empty if not set.
	Name string
	// Description is a template description. Empty if not set.
	Description string
	// Requires is a version constraint on stamp itself. Empty if not set.
	Requires string
	// FollowUp is a message printed after the template is applied. It is rendered
	// with the answers.
	FollowUp string
	// Questions are in declared order.
	Questions []Question
}

// Question returns the question with id.
func (d *Descriptor) Question(id string) (Question, bool) {
	for _, q := range d.Questions {
		if q.GetID() == id {
			return q, true
		}
	}
	return nil, false
}

// IDs returns question ids in declared order.
func (d *Descriptor) IDs() []string {
	ids := make([]string, 0, len(d.Questions))
	for _, q := range d.Questions {
		ids = append(ids, q.GetID())
	}
	return ids
}

// CheckVersion checks stamp version against the template version constraint.
// Versions which cannot be parsed (development builds) are not checked.
func (d *Descriptor) CheckVersion(current string) error {
	if d.Requires == "" {
		return nil
	}
	constraints, err := goVersion.NewConstraint(d.Requires)
	if err != nil {
		return errs.Wrap(errs.InvalidDescriptor, err, "invalid version constraint %q",
			d.Requires)
	}
	version, err := goVersion.NewVersion(current)
	if err != nil {
		return nil
	}
	if !constraints.Check(version) {
		return errs.New(errs.InvalidDescriptor,
			"template requires stamp %s, current version is %s", d.Requires, current)
	}
	return nil
}

// FindDescriptorFile returns the metadata file path in the template directory.
// Empty string is returned if there is no metadata file.
func FindDescriptorFile(templateDir string) (string, error) {
	found := ""
	for _, name := range DescriptorNames {
		candidate := filepath.Join(templateDir, name)
		stat, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", errs.Wrap(errs.IOError, err, "failed to access %s", candidate)
		}
		if stat.IsDir() {
			continue
		}
		if found != "" {
			return "", errs.New(errs.InvalidDescriptor,
				"both %s and %s exist in %s", DefaultDescriptorName, altDescriptorName,
				templateDir)
		}
		found = candidate
	}
	return found, nil
}

// Load loads the descriptor of the template in templateDir. Template without a
// metadata file has an empty descriptor.
func Load(templateDir string) (*Descriptor, error) {
	descriptorPath, err := FindDescriptorFile(templateDir)
	if err != nil {
		return nil, err
	}
	if descriptorPath == "" {
		return &Descriptor{}, nil
	}
	return LoadFile(descriptorPath)
}

// LoadFile loads descriptor from the metadata file.
func LoadFile(descriptorPath string) (*Descriptor, error) {
	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		return nil, errs.Wrap(errs.IOError, err, "failed to read %s", descriptorPath)
	}
	descriptor, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", descriptorPath, err)
	}
	return descriptor, nil
}

// Parse parses the metadata file content.
func Parse(data []byte) (*Descriptor, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.Wrap(errs.InvalidDescriptor, err, "failed to parse descriptor")
	}
	if len(doc.Content) == 0 {
		// Empty document.
		return &Descriptor{}, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return &Descriptor{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errs.New(errs.InvalidDescriptor,
			"invalid descriptor: a mapping is expected at line %d", root.Line)
	}

	var rawMap map[string]interface{}
	if err := root.Decode(&rawMap); err != nil {
		return nil, errs.Wrap(errs.InvalidDescriptor, err, "failed to parse descriptor")
	}

	var raw rawDescriptor
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &raw,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(rawMap); err != nil {
		return nil, errs.Wrap(errs.InvalidDescriptor, err, "failed to decode descriptor")
	}

	var descriptor *Descriptor
	if raw.isLegacy() {
		if raw.Meta != nil || raw.Questions != nil {
			return nil, errs.New(errs.InvalidDescriptor,
				"invalid descriptor: top-level name/description/variables "+
					"cannot be combined with meta/questions")
		}
		descriptor, err = raw.legacyDescriptor(variablesOrder(root))
	} else {
		descriptor, err = raw.descriptor()
	}
	if err != nil {
		return nil, err
	}

	if err := validate(descriptor); err != nil {
		return nil, errs.Wrap(errs.InvalidDescriptor, err, "invalid descriptor")
	}
	return descriptor, nil
}

// variablesOrder returns keys of the top-level variables mapping in document order.
func variablesOrder(root *yaml.Node) []string {
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "variables" {
			continue
		}
		vars := root.Content[i+1]
		keys := make([]string, 0, len(vars.Content)/2)
		for j := 0; j+1 < len(vars.Content); j += 2 {
			keys = append(keys, vars.Content[j].Value)
		}
		return keys
	}
	return nil
}

// validate checks descriptor invariants.
func validate(descriptor *Descriptor) error {
	if descriptor.Requires != "" {
		if _, err := goVersion.NewConstraint(descriptor.Requires); err != nil {
			return fmt.Errorf("meta.requires: %s", err)
		}
	}

	seen := make(map[string]bool, len(descriptor.Questions))
	for i, q := range descriptor.Questions {
		id := q.GetID()
		if id == "" {
			return fmt.Errorf("question #%d: missing id", i+1)
		}
		if !idPattern.MatchString(id) {
			return fmt.Errorf("question %q: id must match %s", id, idPattern)
		}
		if seen[id] {
			return fmt.Errorf("question %q: duplicate id", id)
		}
		seen[id] = true

		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %q: %s", id, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	switch q := q.(type) {
	case *StringQuestion:
		if q.Validate == "" {
			return nil
		}
		re, err := regexp.Compile(q.Validate)
		if err != nil {
			return fmt.Errorf("invalid validate expression: %s", err)
		}
		if q.Default != nil && !re.MatchString(*q.Default) {
			return fmt.Errorf("default %q does not match %s", *q.Default, q.Validate)
		}
	case *SelectQuestion:
		if len(q.Options) == 0 {
			return fmt.Errorf("no options")
		}
		options := make(map[string]bool, len(q.Options))
		for _, option := range q.Options {
			if options[option] {
				return fmt.Errorf("duplicate option %q", option)
			}
			options[option] = true
		}
		if q.Default != nil && !options[*q.Default] {
			return fmt.Errorf("default %q is not one of the options", *q.Default)
		}
	case *MultiSelectQuestion:
		if len(q.Choices) == 0 {
			return fmt.Errorf("no choices")
		}
		choices := make(map[string]bool, len(q.Choices))
		for _, choice := range q.Choices {
			if choice.ID == "" {
				return fmt.Errorf("choice without id")
			}
			if strings.ContainsAny(choice.ID, ", ") {
				return fmt.Errorf("choice %q: id cannot contain commas or spaces", choice.ID)
			}
			if choices[choice.ID] {
				return fmt.Errorf("duplicate choice %q", choice.ID)
			}
			choices[choice.ID] = true
		}
	default:
		return NewUnknownQuestionError(q)
	}
	return nil
}
