package glx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionSupported(t *testing.T) {
	tests := []struct {
		name string
		list string
		ext  string
		want bool
	}{
		{name: "first token", list: "GLX_ARB_foo GLX_ARB_bar", ext: "GLX_ARB_foo", want: true},
		{name: "last token", list: "GLX_ARB_foo GLX_ARB_bar", ext: "GLX_ARB_bar", want: true},
		{name: "middle token", list: "A GLX_ARB_foo B", ext: "GLX_ARB_foo", want: true},
		{name: "only token", list: "GLX_ARB_foo", ext: "GLX_ARB_foo", want: true},
		{name: "prefix of longer token", list: "GLX_ARB_foobar", ext: "GLX_ARB_foo", want: false},
		{name: "suffix of longer token", list: "XGLX_ARB_foo", ext: "GLX_ARB_foo", want: false},
		{name: "partial then whole", list: "GLX_ARB_foobar GLX_ARB_foo", ext: "GLX_ARB_foo", want: true},
		{name: "partial twice", list: "GLX_ARB_foobar GLX_ARB_foobaz", ext: "GLX_ARB_foo", want: false},
		{name: "trailing space", list: "GLX_ARB_foo ", ext: "GLX_ARB_foo", want: true},
		{name: "absent", list: "GLX_ARB_bar", ext: "GLX_ARB_foo", want: false},
		{name: "empty list", list: "", ext: "GLX_ARB_foo", want: false},
		{name: "empty name", list: "GLX_ARB_foo", ext: "", want: false},
		{name: "name with space", list: "GLX_ARB_foo GLX_ARB_bar", ext: "GLX_ARB_foo GLX_ARB_bar", want: false},
		{name: "name with tab", list: "GLX_ARB_foo", ext: "GLX_ARB\tfoo", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtensionSupported(tt.list, tt.ext))
		})
	}
}

func TestExtensions(t *testing.T) {
	exts := Extensions("GLX_ARB_create_context GLX_ARB_create_context_profile  GLX_EXT_swap_control")

	assert.True(t, exts.Has(ExtCreateContext))
	assert.True(t, exts.Has(ExtCreateContextProfile))
	assert.False(t, exts.Has("GLX_ARB_create"))
	assert.Equal(t, []string{
		"GLX_ARB_create_context",
		"GLX_ARB_create_context_profile",
		"GLX_EXT_swap_control",
	}, exts.Tokens())
}
