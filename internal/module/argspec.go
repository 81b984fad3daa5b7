package module

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ArgType names a parameter type in the host runtime's vocabulary.
type ArgType string

// TypeStr is a text parameter; scalars of other types are converted to it.
const TypeStr ArgType = "str"

// ArgSpec declares one module parameter.
type ArgSpec struct {
	Type     ArgType
	Required bool
	Default  any
	// NonEmpty rejects an empty string even when the parameter is present.
	NonEmpty bool
}

// ArgumentSpec declares every parameter a module accepts.
type ArgumentSpec map[string]ArgSpec

// Params are bound, validated module parameters.
type Params map[string]any

// String returns a string parameter, or "" if it is unset.
func (p Params) String(name string) string {
	s, _ := p[name].(string)
	return s
}

// MaterializeArgumentSpec is the argument spec of my_own_module.
func MaterializeArgumentSpec() ArgumentSpec {
	return ArgumentSpec{
		"path":    {Type: TypeStr, Required: true, NonEmpty: true},
		"content": {Type: TypeStr, Default: ""},
	}
}

// Names returns the declared parameter names in sorted order.
func (s ArgumentSpec) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema renders the spec as a JSON Schema document.
func (s ArgumentSpec) Schema() map[string]any {
	properties := make(map[string]any, len(s))
	required := []any{}
	for _, name := range s.Names() {
		spec := s[name]
		prop := map[string]any{"type": jsonType(spec.Type)}
		if spec.NonEmpty {
			prop["minLength"] = 1
		}
		properties[name] = prop
		if spec.Required {
			required = append(required, name)
		}
	}

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}
}

func (s ArgumentSpec) compile() (*jsonschema.Schema, error) {
	data, err := json.Marshal(s.Schema())
	if err != nil {
		return nil, fmt.Errorf("marshal argument schema: %w", err)
	}

	const resourceID = "inmemory://argument_spec"
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceID, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add argument schema: %w", err)
	}
	compiled, err := compiler.Compile(resourceID)
	if err != nil {
		return nil, fmt.Errorf("compile argument schema: %w", err)
	}
	return compiled, nil
}

// Bind checks raw parameters against the spec, converts values to their
// declared types and fills in defaults. Conversion notices are returned as
// warnings for the result.
func (s ArgumentSpec) Bind(raw map[string]any, moduleName string) (Params, []string, error) {
	if moduleName == "" {
		moduleName = Name
	}

	var unsupported []string
	for key := range raw {
		if _, ok := s[key]; !ok {
			unsupported = append(unsupported, key)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return nil, nil, &ArgumentError{Msg: fmt.Sprintf(
			"Unsupported parameters for (%s) module: %s. Supported parameters include: %s.",
			moduleName, strings.Join(unsupported, ", "), strings.Join(s.Names(), ", "),
		)}
	}

	var missing []string
	for _, name := range s.Names() {
		if s[name].Required && raw[name] == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &ArgumentError{Msg: "missing required arguments: " + strings.Join(missing, ", ")}
	}

	params := make(Params, len(s))
	var warnings []string
	for _, name := range s.Names() {
		spec := s[name]
		value, present := raw[name]
		if !present || value == nil {
			if spec.Default != nil {
				params[name] = spec.Default
			}
			continue
		}

		converted, warning, err := convert(name, spec.Type, value)
		if err != nil {
			return nil, nil, err
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
		params[name] = converted
	}

	compiled, err := s.compile()
	if err != nil {
		return nil, nil, err
	}
	if err := compiled.Validate(map[string]any(params)); err != nil {
		return nil, nil, &ArgumentError{Msg: describeValidation(err)}
	}

	return params, warnings, nil
}

func convert(name string, typ ArgType, value any) (any, string, error) {
	if typ != TypeStr {
		return value, "", nil
	}

	var s string
	switch v := value.(type) {
	case string:
		return v, "", nil
	case bool:
		s = "False"
		if v {
			s = "True"
		}
	case int:
		s = strconv.Itoa(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case json.Number:
		s = v.String()
	default:
		return nil, "", &ArgumentError{Msg: fmt.Sprintf(
			"argument '%s' is of type %s and we were unable to convert to str", name, typeName(value),
		)}
	}

	warning := fmt.Sprintf(
		"The value %v (type %s) in a string field was converted to '%s' (type string). "+
			"If this does not look like what you expect, quote the entire value to ensure it does not change.",
		value, typeName(value), s,
	)
	return s, warning, nil
}

func describeValidation(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Sprintf("argument validation failed: %v", err)
	}

	// Report the innermost causes; they point at the offending parameter
	var msgs []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			field := strings.TrimPrefix(e.InstanceLocation, "/")
			if field == "" {
				msgs = append(msgs, e.Message)
			} else {
				msgs = append(msgs, fmt.Sprintf("argument '%s': %s", field, e.Message))
			}
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	return "argument validation failed: " + strings.Join(msgs, "; ")
}

func jsonType(t ArgType) string {
	switch t {
	case TypeStr:
		return "string"
	default:
		return string(t)
	}
}

func typeName(v any) string {
	switch v := v.(type) {
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case json.Number:
		if strings.ContainsAny(v.String(), ".eE") {
			return "float"
		}
		return "int"
	default:
		return fmt.Sprintf("%T", v)
	}
}
