// Package templates provides the opaque file payloads written by the
// framework modules. The generation engine only decides where payloads are
// written; their contents live here.
package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ErrRender indicates a payload template failed to render.
var ErrRender = errors.New("template render failed")

// funcMap provides helpers available in all payload templates.
var funcMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	// slug lowercases a name and replaces spaces so it is a valid npm
	// package name.
	"slug": func(s string) string {
		return strings.ReplaceAll(strings.ToLower(s), " ", "-")
	},
}

// render executes a payload template in strict mode. Payload templates are
// compiled-in constants, so a failure is a programming error; callers treat
// it as a module-internal failure and surface it through BuildResult errors.
func render(name, text string, data any) ([]byte, error) {
	tmpl, err := template.New(name).
		Funcs(funcMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrRender, name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: execute %s: %v", ErrRender, name, err)
	}
	return buf.Bytes(), nil
}

// mustRender is render for templates with no failure mode worth plumbing;
// it panics on error, which the registry converts to a build error entry.
func mustRender(name, text string, data any) []byte {
	out, err := render(name, text, data)
	if err != nil {
		panic(err)
	}
	return out
}
