package domain

import (
	"strings"

	m "gooze.dev/pkg/hardlit/internal/model"
)

const (
	ignoreDirective     = "hardlit:ignore"
	ignoreFileDirective = "hardlit:ignore-file"
)

// ignoreSet holds the suppressions declared by comments in one file.
type ignoreSet struct {
	file  bool
	lines map[int]struct{}
}

// parseIgnoreAnnotations reads suppression directives from the line comments
// of a parsed file. "// hardlit:ignore" covers its own line and the next one,
// while "// hardlit:ignore-file" covers the whole file.
func parseIgnoreAnnotations(file *m.SyntaxFile) ignoreSet {
	set := ignoreSet{lines: make(map[int]struct{})}

	for _, comment := range file.Comments {
		switch directiveOf(file.Text(comment)) {
		case ignoreFileDirective:
			set.file = true
		case ignoreDirective:
			line, _ := file.Position(comment.Offset)
			set.lines[line] = struct{}{}
			set.lines[line+1] = struct{}{}
		}
	}

	return set
}

// directiveOf returns the directive a line comment carries, empty when none.
func directiveOf(comment string) string {
	text, ok := strings.CutPrefix(comment, "//")
	if !ok {
		return ""
	}

	text = strings.TrimSpace(strings.TrimLeft(text, "/"))

	switch {
	case text == ignoreFileDirective || strings.HasPrefix(text, ignoreFileDirective+" "):
		return ignoreFileDirective
	case text == ignoreDirective || strings.HasPrefix(text, ignoreDirective+" "):
		return ignoreDirective
	}

	return ""
}

func (s ignoreSet) suppresses(line int) bool {
	if s.file {
		return true
	}

	_, ok := s.lines[line]

	return ok
}
