package manifest

import (
	"fmt"
	"time"

	"github.com/stampcli/stamp/cli/errs"
	"gopkg.in/yaml.v3"
)

// rawMeta is the meta block of a descriptor.
type rawMeta struct {
	Name        string `mapstructure:"name" yaml:"name,omitempty"`
	Description string `mapstructure:"description" yaml:"description,omitempty"`
	Requires    string `mapstructure:"requires" yaml:"requires,omitempty"`
	FollowUp    string `mapstructure:"follow_up" yaml:"follow_up,omitempty"`
}

type rawChoice struct {
	ID      string `mapstructure:"id" yaml:"id"`
	Prompt  string `mapstructure:"prompt" yaml:"prompt,omitempty"`
	Default bool   `mapstructure:"default" yaml:"default,omitempty"`
}

type rawQuestion struct {
	Type     string        `mapstructure:"type" yaml:"type"`
	ID       string        `mapstructure:"id" yaml:"id"`
	Prompt   string        `mapstructure:"prompt" yaml:"prompt,omitempty"`
	Default  interface{}   `mapstructure:"default" yaml:"default,omitempty"`
	Validate string        `mapstructure:"validate" yaml:"validate,omitempty"`
	Options  []interface{} `mapstructure:"options" yaml:"options,omitempty"`
	Choices  []rawChoice   `mapstructure:"choices" yaml:"choices,omitempty"`
}

// rawVariable is a variable of the legacy descriptor format.
type rawVariable struct {
	Description *string     `mapstructure:"description"`
	Default     interface{} `mapstructure:"default"`
}

// rawDescriptor contains fields of both descriptor formats: meta/questions
// and the legacy name/description/variables one.
type rawDescriptor struct {
	Meta      *rawMeta      `mapstructure:"meta" yaml:"meta,omitempty"`
	Questions []rawQuestion `mapstructure:"questions" yaml:"questions,omitempty"`

	Name        string                 `mapstructure:"name" yaml:"-"`
	Description string                 `mapstructure:"description" yaml:"-"`
	Variables   map[string]rawVariable `mapstructure:"variables" yaml:"-"`
}

func (raw *rawDescriptor) isLegacy() bool {
	return raw.Name != "" || raw.Description != "" || raw.Variables != nil
}

// scalarString converts YAML scalar to string. Returns nil for absent value.
func scalarString(field string, value interface{}) (*string, error) {
	switch value := value.(type) {
	case nil:
		return nil, nil
	case string:
		return &value, nil
	case bool, int, int64, uint64, float64:
		str := fmt.Sprint(value)
		return &str, nil
	case time.Time:
		return nil, fmt.Errorf("%s %s is parsed as a timestamp, quote it to use as a string",
			field, value.Format(time.RFC3339))
	case []interface{}:
		return nil, fmt.Errorf("%s must be a scalar, got a list", field)
	case map[string]interface{}, map[interface{}]interface{}:
		return nil, fmt.Errorf("%s must be a scalar, got a mapping", field)
	}
	return nil, fmt.Errorf("%s must be a scalar, got %T", field, value)
}

// scalarStrings converts a list of YAML scalars to strings.
func scalarStrings(field string, values []interface{}) ([]string, error) {
	if values == nil {
		return nil, nil
	}
	result := make([]string, 0, len(values))
	for _, value := range values {
		str, err := scalarString(field, value)
		if err != nil {
			return nil, err
		}
		if str == nil {
			return nil, fmt.Errorf("%s cannot be null", field)
		}
		result = append(result, *str)
	}
	return result, nil
}

func (raw *rawDescriptor) descriptor() (*Descriptor, error) {
	descriptor := &Descriptor{}
	if raw.Meta != nil {
		descriptor.Name = raw.Meta.Name
		descriptor.Description = raw.Meta.Description
		descriptor.Requires = raw.Meta.Requires
		descriptor.FollowUp = raw.Meta.FollowUp
	}

	for i, rq := range raw.Questions {
		q, err := rq.question()
		if err != nil {
			name := rq.ID
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, errs.Wrap(errs.InvalidDescriptor, err,
				"invalid descriptor: question %s", name)
		}
		descriptor.Questions = append(descriptor.Questions, q)
	}
	return descriptor, nil
}

func (rq *rawQuestion) question() (Question, error) {
	prompt := rq.Prompt
	if prompt == "" {
		prompt = rq.ID
	}

	switch Kind(rq.Type) {
	case KindString:
		if rq.Options != nil || rq.Choices != nil {
			return nil, fmt.Errorf("string question cannot have options or choices")
		}
		def, err := scalarString("default", rq.Default)
		if err != nil {
			return nil, err
		}
		return &StringQuestion{ID: rq.ID, Prompt: prompt, Default: def,
			Validate: rq.Validate}, nil
	case KindSelect:
		if rq.Choices != nil || rq.Validate != "" {
			return nil, fmt.Errorf("select question cannot have choices or validate")
		}
		def, err := scalarString("default", rq.Default)
		if err != nil {
			return nil, err
		}
		options, err := scalarStrings("option", rq.Options)
		if err != nil {
			return nil, err
		}
		return &SelectQuestion{ID: rq.ID, Prompt: prompt, Options: options,
			Default: def}, nil
	case KindMultiSelect:
		if rq.Options != nil || rq.Validate != "" || rq.Default != nil {
			return nil, fmt.Errorf("multiselect question cannot have options, " +
				"validate or default: set default per choice")
		}
		q := &MultiSelectQuestion{ID: rq.ID, Prompt: prompt}
		for _, rc := range rq.Choices {
			choicePrompt := rc.Prompt
			if choicePrompt == "" {
				choicePrompt = rc.ID
			}
			q.Choices = append(q.Choices, Choice{ID: rc.ID, Prompt: choicePrompt,
				Default: rc.Default})
		}
		return q, nil
	case "":
		return nil, fmt.Errorf("missing question type")
	}
	return nil, fmt.Errorf("unknown question type %q: expected one of %s, %s, %s",
		rq.Type, KindString, KindSelect, KindMultiSelect)
}

// legacyDescriptor converts variables into string questions in order.
func (raw *rawDescriptor) legacyDescriptor(order []string) (*Descriptor, error) {
	descriptor := &Descriptor{
		Name:        raw.Name,
		Description: raw.Description,
	}
	for _, id := range order {
		variable := raw.Variables[id]
		def, err := scalarString("default", variable.Default)
		if err != nil {
			return nil, errs.Wrap(errs.InvalidDescriptor, err,
				"invalid descriptor: variable %q", id)
		}
		prompt := id
		if variable.Description != nil && *variable.Description != "" {
			prompt = fmt.Sprintf("%s: %s", id, *variable.Description)
		}
		descriptor.Questions = append(descriptor.Questions,
			&StringQuestion{ID: id, Prompt: prompt, Default: def})
	}
	return descriptor, nil
}

// Marshal encodes the descriptor in the meta/questions format.
func (d *Descriptor) Marshal() ([]byte, error) {
	raw := rawDescriptor{}
	if d.Name != "" || d.Description != "" || d.Requires != "" || d.FollowUp != "" {
		raw.Meta = &rawMeta{Name: d.Name, Description: d.Description, Requires: d.Requires,
			FollowUp: d.FollowUp}
	}
	for _, q := range d.Questions {
		rq := rawQuestion{Type: string(q.Kind()), ID: q.GetID(), Prompt: q.GetPrompt()}
		switch q := q.(type) {
		case *StringQuestion:
			if q.Default != nil {
				rq.Default = *q.Default
			}
			rq.Validate = q.Validate
		case *SelectQuestion:
			if q.Default != nil {
				rq.Default = *q.Default
			}
			for _, option := range q.Options {
				rq.Options = append(rq.Options, option)
			}
		case *MultiSelectQuestion:
			for _, choice := range q.Choices {
				rq.Choices = append(rq.Choices, rawChoice{ID: choice.ID, Prompt: choice.Prompt,
					Default: choice.Default})
			}
		default:
			return nil, NewUnknownQuestionError(q)
		}
		raw.Questions = append(raw.Questions, rq)
	}
	return yaml.Marshal(&raw)
}
