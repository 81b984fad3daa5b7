package module

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed docs/documentation.yml
	documentationYAML string
	//go:embed docs/examples.yml
	examplesYAML string
	//go:embed docs/return.yml
	returnYAML string
)

// Text is a description that may be written as one string or a list of lines.
type Text []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (t *Text) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*t = Text{value.Value}
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := value.Decode(&lines); err != nil {
			return err
		}
		*t = lines
		return nil
	default:
		return fmt.Errorf("line %d: description must be a string or a list of strings", value.Line)
	}
}

// OptionDoc documents one module parameter.
type OptionDoc struct {
	Description Text    `yaml:"description"`
	Required    bool    `yaml:"required"`
	Type        string  `yaml:"type"`
	Default     *string `yaml:"default"`
}

// Documentation is the parsed DOCUMENTATION block.
type Documentation struct {
	Module           string               `yaml:"module"`
	ShortDescription string               `yaml:"short_description"`
	VersionAdded     string               `yaml:"version_added"`
	Description      Text                 `yaml:"description"`
	Options          map[string]OptionDoc `yaml:"options"`
	Notes            Text                 `yaml:"notes"`
	Author           Text                 `yaml:"author"`
}

// ReturnDoc documents one key of the result.
type ReturnDoc struct {
	Description Text   `yaml:"description"`
	Type        string `yaml:"type"`
	Returned    string `yaml:"returned"`
	Sample      any    `yaml:"sample"`
}

// Example is one task from the EXAMPLES block.
type Example struct {
	Name string
	// Module is the fully qualified module name the task calls.
	Module string
	Args   map[string]any
}

// Docs bundles the parsed documentation blocks.
type Docs struct {
	Documentation Documentation
	Examples      []Example
	Return        map[string]ReturnDoc
}

// DocumentationYAML returns the raw DOCUMENTATION block.
func DocumentationYAML() string { return documentationYAML }

// ExamplesYAML returns the raw EXAMPLES block.
func ExamplesYAML() string { return examplesYAML }

// ReturnYAML returns the raw RETURN block.
func ReturnYAML() string { return returnYAML }

// LoadDocs parses the embedded documentation blocks.
func LoadDocs() (*Docs, error) {
	var docs Docs

	if err := yaml.Unmarshal([]byte(documentationYAML), &docs.Documentation); err != nil {
		return nil, fmt.Errorf("failed to parse DOCUMENTATION: %w", err)
	}

	if err := yaml.Unmarshal([]byte(returnYAML), &docs.Return); err != nil {
		return nil, fmt.Errorf("failed to parse RETURN: %w", err)
	}

	var tasks []map[string]any
	if err := yaml.Unmarshal([]byte(examplesYAML), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse EXAMPLES: %w", err)
	}
	for i, task := range tasks {
		ex := Example{}
		for key, value := range task {
			if key == "name" {
				ex.Name = fmt.Sprint(value)
				continue
			}
			args, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("failed to parse EXAMPLES: task %d: %s arguments must be a mapping", i, key)
			}
			ex.Module = key
			ex.Args = args
		}
		if ex.Module == "" {
			return nil, fmt.Errorf("failed to parse EXAMPLES: task %d calls no module", i)
		}
		docs.Examples = append(docs.Examples, ex)
	}

	return &docs, nil
}
