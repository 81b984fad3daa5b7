package module

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

const (
	internalPrefix = "_ansible_"
	// wrapperKey is used by runtimes that pass arguments nested under one key
	wrapperKey = "ANSIBLE_MODULE_ARGS"
)

// HostOptions are the runtime-internal settings passed alongside module arguments.
type HostOptions struct {
	CheckMode  bool
	Diff       bool
	NoLog      bool
	Verbosity  int
	ModuleName string
}

// DecodeArgs parses the contents of an args file.
//
// JSON and YAML mappings are accepted (JSON is decoded as YAML), as is the
// legacy form of shell-quoted key=value words. Keys starting with _ansible_
// are removed from the returned parameters and folded into HostOptions.
func DecodeArgs(data []byte) (map[string]any, HostOptions, error) {
	var opts HostOptions

	raw, err := decodeDocument(data)
	if err != nil {
		return nil, opts, err
	}

	if nested, ok := raw[wrapperKey].(map[string]any); ok && len(raw) == 1 {
		raw = nested
	}

	params := make(map[string]any, len(raw))
	for key, value := range raw {
		name, internal := strings.CutPrefix(key, internalPrefix)
		if !internal {
			params[key] = value
			continue
		}

		switch name {
		case "check_mode":
			opts.CheckMode, err = toBool(key, value)
		case "diff":
			opts.Diff, err = toBool(key, value)
		case "no_log":
			opts.NoLog, err = toBool(key, value)
		case "verbosity":
			opts.Verbosity, err = toInt(key, value)
		case "module_name":
			opts.ModuleName = fmt.Sprint(value)
		}
		if err != nil {
			return nil, opts, err
		}
	}

	return params, opts, nil
}

func decodeDocument(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return map[string]any{}, nil
	}

	if looksLikeKeyValue(trimmed) {
		return parseKeyValue(string(trimmed))
	}

	// The host runtime writes JSON with \u escapes (surrogate pairs included),
	// which YAML does not accept. Flow-style YAML mappings fall through.
	var jsonErr error
	if trimmed[0] == '{' {
		out, err := decodeJSON(trimmed)
		if err == nil {
			return out, nil
		}
		jsonErr = err
	}

	var node yaml.Node
	yamlErr := yaml.Unmarshal(trimmed, &node)
	if yamlErr == nil && len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
		var out map[string]any
		if err := node.Decode(&out); err != nil {
			return nil, &ArgumentError{Msg: fmt.Sprintf("failed to decode module arguments: %v", err)}
		}
		if out == nil {
			out = map[string]any{}
		}
		return out, nil
	}

	// Something meant as a mapping that did not parse is not legacy input
	if jsonErr != nil {
		return nil, &ArgumentError{Msg: fmt.Sprintf("failed to decode module arguments: %v", jsonErr)}
	}

	return parseKeyValue(string(trimmed))
}

// decodeJSON decodes one JSON object, keeping numbers as json.Number so they
// convert to strings exactly as written.
func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the arguments object")
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// looksLikeKeyValue reports whether the first word is a key=value pair, so a
// quoted value containing ": " is not mistaken for a YAML mapping.
func looksLikeKeyValue(data []byte) bool {
	first, _, _ := bytes.Cut(data, []byte(" "))
	key, _, ok := bytes.Cut(first, []byte("="))
	return ok && len(key) > 0 && !bytes.ContainsAny(key, ":{}[]\"'#-")
}

func parseKeyValue(s string) (map[string]any, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, &ArgumentError{Msg: fmt.Sprintf("failed to split module arguments: %v", err)}
	}

	out := make(map[string]any, len(words))
	for _, word := range words {
		key, value, ok := strings.Cut(word, "=")
		if !ok || key == "" {
			return nil, &ArgumentError{Msg: fmt.Sprintf("this module requires key=value arguments (%q)", word)}
		}
		out[key] = value
	}
	return out, nil
}

func toBool(key string, v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case int:
		return t != 0, nil
	case json.Number:
		return toBool(key, t.String())
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "on", "1", "true", "y", "t":
			return true, nil
		case "no", "off", "0", "false", "n", "f", "":
			return false, nil
		}
	case nil:
		return false, nil
	}
	return false, &ArgumentError{Msg: fmt.Sprintf("%s: %v is not a valid boolean", key, v)}
}

func toInt(key string, v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		return int(t), nil
	case json.Number:
		return toInt(key, t.String())
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err == nil {
			return n, nil
		}
	case nil:
		return 0, nil
	}
	return 0, &ArgumentError{Msg: fmt.Sprintf("%s: %v is not a valid integer", key, v)}
}
