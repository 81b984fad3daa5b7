package module

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_Defaults(t *testing.T) {
	params, warnings, err := MaterializeArgumentSpec().Bind(map[string]any{"path": "/tmp/x"}, "")
	require.NoError(t, err)

	assert.Equal(t, Params{"path": "/tmp/x", "content": ""}, params)
	assert.Empty(t, warnings)
	assert.Equal(t, "/tmp/x", params.String("path"))
	assert.Equal(t, "", params.String("content"))
}

func TestBind_NullContentUsesDefault(t *testing.T) {
	params, _, err := MaterializeArgumentSpec().Bind(map[string]any{"path": "/tmp/x", "content": nil}, "")
	require.NoError(t, err)
	assert.Equal(t, "", params["content"])
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "missing path",
			raw:  map[string]any{"content": "x"},
			want: "missing required arguments: path",
		},
		{
			name: "null path",
			raw:  map[string]any{"path": nil},
			want: "missing required arguments: path",
		},
		{
			name: "unsupported parameter",
			raw:  map[string]any{"path": "/tmp/x", "state": "absent", "mode": "0644"},
			want: "Unsupported parameters for (my_own_module) module: mode, state. Supported parameters include: content, path.",
		},
		{
			name: "list content",
			raw:  map[string]any{"path": "/tmp/x", "content": []any{"a"}},
			want: "argument 'content' is of type list and we were unable to convert to str",
		},
		{
			name: "dict path",
			raw:  map[string]any{"path": map[string]any{"a": 1}},
			want: "argument 'path' is of type dict and we were unable to convert to str",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := MaterializeArgumentSpec().Bind(tt.raw, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArguments)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestBind_EmptyPathRejectedBySchema(t *testing.T) {
	_, _, err := MaterializeArgumentSpec().Bind(map[string]any{"path": ""}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArguments)
	assert.Contains(t, err.Error(), "argument validation failed")
	assert.Contains(t, err.Error(), "'path'")
}

func TestBind_ModuleNameInMessage(t *testing.T) {
	_, _, err := MaterializeArgumentSpec().Bind(map[string]any{"path": "/x", "bogus": 1}, "custom_name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "(custom_name)")
}

func TestBind_ConvertsScalarsToStrings(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 42, "42"},
		{"bool true", true, "True"},
		{"bool false", false, "False"},
		{"float", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, warnings, err := MaterializeArgumentSpec().Bind(map[string]any{"path": "/tmp/x", "content": tt.value}, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, params["content"])
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], "converted to '"+tt.want+"'")
		})
	}
}

func TestArgumentSpecSchema(t *testing.T) {
	schema := MaterializeArgumentSpec().Schema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []any{"path"}, schema["required"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "string", "minLength": 1}, properties["path"])
	assert.Equal(t, map[string]any{"type": "string"}, properties["content"])

	_, err := MaterializeArgumentSpec().compile()
	assert.NoError(t, err)
}

func TestArgumentSpecNames(t *testing.T) {
	assert.Equal(t, []string{"content", "path"}, MaterializeArgumentSpec().Names())
}
