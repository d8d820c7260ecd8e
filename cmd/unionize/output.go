package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"unionize/internal/diagnostic"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var severityColors = map[diagnostic.Severity]*color.Color{
	diagnostic.SeverityError:   color.New(color.FgRed, color.Bold),
	diagnostic.SeverityWarning: color.New(color.FgYellow),
	diagnostic.SeverityInfo:    color.New(color.FgCyan),
}

func (e *env) write(v any) error {
	var (
		data []byte
		err  error
	)

	switch e.format {
	case formatYAML:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.Marshal(v)
		data = append(data, '\n')
	}

	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = e.out.Write(data)

	return err
}

func writeDiagnostics(w io.Writer, ds []diagnostic.Diagnostic) {
	for _, d := range ds {
		severityColors[d.Severity].Fprintf(w, "%s", d.Severity)
		fmt.Fprintf(w, ": %s\n", d)
	}
}
