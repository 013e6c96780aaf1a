// Package ctype splits native C++ type names into their template parts.
package ctype

import (
	"errors"
	"slices"
	"strings"
)

// Errors
var (
	ErrNotTemplate = errors.New("ctype: not a template instantiation")
	ErrUnbalanced  = errors.New("ctype: unbalanced template brackets")
)

// Template is a parsed template instantiation such as QMap<QString, int>.
type Template struct {
	Name      string
	Arguments []string
}

func (t *Template) String() string {
	return t.Name + "<" + strings.Join(t.Arguments, ", ") + ">"
}

// ParseTemplate parses "Name<Arg, ...>". The closing bracket of the
// argument list must end the input.
func ParseTemplate(s string) (*Template, error) {
	open := strings.IndexByte(s, '<')
	if open <= 0 || !strings.HasSuffix(s, ">") {
		return nil, ErrNotTemplate
	}

	body := s[open+1 : len(s)-1]
	args, err := splitArguments(body)
	if err != nil {
		return nil, err
	}

	return &Template{
		Name:      strings.TrimSpace(s[:open]),
		Arguments: args,
	}, nil
}

// Unwrap reports whether s instantiates one of wrappers with a non-empty
// argument list and returns the wrapper name and its argument text.
func Unwrap(s string, wrappers []string) (wrapper, inner string, ok bool) {
	t, err := ParseTemplate(s)
	if err != nil || len(t.Arguments) == 0 || !slices.Contains(wrappers, t.Name) {
		return "", "", false
	}
	open := strings.IndexByte(s, '<')
	return t.Name, strings.TrimSpace(s[open+1 : len(s)-1]), true
}

// splitArguments splits on top-level commas.
func splitArguments(body string) ([]string, error) {
	var args []string
	depth := 0
	start := 0

	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return nil, ErrUnbalanced
			}
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ErrUnbalanced
	}

	last := strings.TrimSpace(body[start:])
	if last != "" || len(args) > 0 {
		args = append(args, last)
	}
	return args, nil
}
