package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/hardlit/internal/adapter"
	m "gooze.dev/pkg/hardlit/internal/model"
)

func parseForIgnores(t *testing.T, src string) *m.SyntaxFile {
	t.Helper()

	file, err := adapter.NewLocalSwiftFileAdapter().Parse(context.Background(), "Fixture.swift", []byte(src))
	require.NoError(t, err)

	return file
}

func TestDirectiveOf(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    string
	}{
		{"plain", `// hardlit:ignore`, ignoreDirective},
		{"no space", `//hardlit:ignore`, ignoreDirective},
		{"doc comment", `/// hardlit:ignore`, ignoreDirective},
		{"with reason", `// hardlit:ignore debug only`, ignoreDirective},
		{"file", `// hardlit:ignore-file`, ignoreFileDirective},
		{"file with reason", `// hardlit:ignore-file generated`, ignoreFileDirective},
		{"other comment", `// TODO: translate`, ""},
		{"prefix only", `// hardlit:ignored`, ""},
		{"not a comment", `hardlit:ignore`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, directiveOf(tt.comment))
		})
	}
}

func TestParseIgnoreAnnotations(t *testing.T) {
	file := parseForIgnores(t, "let a = \"A\"\n// hardlit:ignore\nlet b = \"B\"\nlet c = \"C\" // hardlit:ignore\nlet d = \"D\"\nlet e = \"E\"\n")

	set := parseIgnoreAnnotations(file)

	assert.False(t, set.file)
	assert.False(t, set.suppresses(1))
	assert.True(t, set.suppresses(2))
	assert.True(t, set.suppresses(3))
	assert.True(t, set.suppresses(4))
	assert.True(t, set.suppresses(5))
	assert.False(t, set.suppresses(6))
}

func TestParseIgnoreAnnotations_File(t *testing.T) {
	set := parseIgnoreAnnotations(parseForIgnores(t, "let a = \"A\"\n\n// hardlit:ignore-file\n"))

	assert.True(t, set.file)
	assert.True(t, set.suppresses(1))
	assert.True(t, set.suppresses(100))
}

func TestParseIgnoreAnnotations_DirectiveInsideString(t *testing.T) {
	src := "let url = \"http://example.com hardlit:ignore\"\nlet next = \"Next\"\nlet all = \"// hardlit:ignore-file\"\n"

	set := parseIgnoreAnnotations(parseForIgnores(t, src))

	assert.False(t, set.file)
	assert.False(t, set.suppresses(1))
	assert.False(t, set.suppresses(2))
}

func TestParseIgnoreAnnotations_AfterStringWithSlashes(t *testing.T) {
	set := parseIgnoreAnnotations(parseForIgnores(t, "let u = \"http://example.com\" // hardlit:ignore\n"))

	assert.True(t, set.suppresses(1))
}

func TestParseIgnoreAnnotations_BlockCommentIgnored(t *testing.T) {
	set := parseIgnoreAnnotations(parseForIgnores(t, "/* hardlit:ignore-file */\nlet a = \"A\"\n"))

	assert.False(t, set.file)
	assert.False(t, set.suppresses(2))
}

func TestParseIgnoreAnnotations_Empty(t *testing.T) {
	set := parseIgnoreAnnotations(m.NewSyntaxFile("Empty.swift", nil, nil, nil))

	assert.False(t, set.suppresses(1))
}
