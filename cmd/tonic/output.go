package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
	"gopkg.in/yaml.v3"
)

// Exit codes of the tonic command.
const (
	ExitSuccess      = 0 // everything went fine
	ExitFailure      = 1 // a lookup failed: unknown name, note not in scale...
	ExitCommandError = 2 // bad arguments, unreadable or unwritable files
)

// ExitError carries the exit code the command should end with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code and a message.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err, ExitFailure if it has none.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// emit writes the result of a command in the format chosen by the user: a
// template over data if one was given, otherwise data as json or yaml, or the
// human readable form written by text.
func (o *RootOptions) emit(w io.Writer, data any, text func(io.Writer) error) error {
	if o.Template != "" {
		tmpl, err := template.New("output").Funcs(sprig.TxtFuncMap()).Parse(o.Template)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --template", err)
		}
		var b strings.Builder
		if err := tmpl.Execute(&b, data); err != nil {
			return WrapExitError(ExitCommandError, "could not execute --template", err)
		}
		out := b.String()
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		_, err = io.WriteString(w, out)
		return err
	}
	switch o.Format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}
	return text(w)
}
