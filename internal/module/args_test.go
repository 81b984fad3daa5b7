package module

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArgs_JSON(t *testing.T) {
	// Shaped like the args file the host runtime writes for binary modules
	data, err := json.Marshal(map[string]any{
		"path":                 "/tmp/x/y/my.test",
		"content":              "hello \"world\"\nsecond line",
		"_ansible_check_mode":  true,
		"_ansible_diff":        false,
		"_ansible_no_log":      false,
		"_ansible_verbosity":   2,
		"_ansible_module_name": "my_own_module",
		"_ansible_tmpdir":      "/tmp/ansible-tmp",
	})
	require.NoError(t, err)

	params, opts, err := DecodeArgs(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"path":    "/tmp/x/y/my.test",
		"content": "hello \"world\"\nsecond line",
	}, params)
	assert.Equal(t, HostOptions{
		CheckMode:  true,
		Verbosity:  2,
		ModuleName: "my_own_module",
	}, opts)
}

func TestDecodeArgs_JSONSurrogateEscapes(t *testing.T) {
	// Python's json.dumps escapes characters outside the BMP as surrogate pairs
	data := []byte(`{"path": "/tmp/emoji.txt", "content": "hi \ud83d\ude00 \u65e5\u672c"}`)

	params, _, err := DecodeArgs(data)
	require.NoError(t, err)
	assert.Equal(t, "hi \U0001F600 日本", params["content"])
}

func TestDecodeArgs_JSONNumbersKeepTheirForm(t *testing.T) {
	params, opts, err := DecodeArgs([]byte(`{"path": "/tmp/x", "content": 1.0, "_ansible_verbosity": 3, "_ansible_diff": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Verbosity)
	assert.True(t, opts.Diff)

	bound, warnings, err := MaterializeArgumentSpec().Bind(params, "")
	require.NoError(t, err)
	assert.Equal(t, "1.0", bound["content"])
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "(type float)")
}

func TestDecodeArgs_FlowYAMLMapping(t *testing.T) {
	params, _, err := DecodeArgs([]byte(`{path: /tmp/x, content: plain}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"path": "/tmp/x", "content": "plain"}, params)
}

func TestDecodeArgs_YAML(t *testing.T) {
	data := []byte("path: ~/test/my.test\ncontent: |\n  line one\n  line two\n_ansible_diff: yes\n")

	params, opts, err := DecodeArgs(data)
	require.NoError(t, err)

	assert.Equal(t, "~/test/my.test", params["path"])
	assert.Equal(t, "line one\nline two\n", params["content"])
	assert.True(t, opts.Diff)
	assert.False(t, opts.CheckMode)
}

func TestDecodeArgs_WrappedArguments(t *testing.T) {
	data := []byte(`{"ANSIBLE_MODULE_ARGS": {"path": "/srv/f", "_ansible_check_mode": true}}`)

	params, opts, err := DecodeArgs(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"path": "/srv/f"}, params)
	assert.True(t, opts.CheckMode)
}

func TestDecodeArgs_KeyValue(t *testing.T) {
	data := []byte(`path=/tmp/my.test content="My new content" _ansible_check_mode=True`)

	params, opts, err := DecodeArgs(data)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"path":    "/tmp/my.test",
		"content": "My new content",
	}, params)
	assert.True(t, opts.CheckMode)
}

func TestDecodeArgs_KeyValueWithColon(t *testing.T) {
	data := []byte(`path=/tmp/my.test content="key: value"`)

	params, _, err := DecodeArgs(data)
	require.NoError(t, err)
	assert.Equal(t, "key: value", params["content"])
}

func TestDecodeArgs_Empty(t *testing.T) {
	params, opts, err := DecodeArgs([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, params)
	assert.Equal(t, HostOptions{}, opts)
}

func TestDecodeArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"broken json", `{"path": "/tmp/x",`},
		{"trailing data", `{"path": "/tmp/x"} {"path": "/tmp/y"}`},
		{"bare word", `path=/tmp/x oops`},
		{"unterminated quote", `path="/tmp/x`},
		{"bad boolean", `{"path": "/tmp/x", "_ansible_check_mode": "perhaps"}`},
		{"bad verbosity", `{"path": "/tmp/x", "_ansible_verbosity": "loud"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeArgs([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArguments)
		})
	}
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, "yes", "On", "1", "true", "TRUE", 1} {
		got, err := toBool("k", v)
		assert.NoError(t, err)
		assert.True(t, got, "%v should be true", v)
	}
	for _, v := range []any{false, "no", "off", "0", "False", "", 0, nil} {
		got, err := toBool("k", v)
		assert.NoError(t, err)
		assert.False(t, got, "%v should be false", v)
	}
}
