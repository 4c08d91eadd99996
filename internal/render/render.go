// Package render writes API responses for a human operator. Lists come out
// as tables by default; every format can fall back to the raw validated JSON.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/alvesdmateus/paasctl/internal/platform"
)

// Format selects the output representation
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name from a flag or config value
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json or yaml)", s)
	}
}

// Raw renders a validated response body. Table format has no column mapping
// for arbitrary payloads, so it renders as indented JSON too.
func Raw(w io.Writer, format Format, body json.RawMessage) error {
	switch format {
	case FormatYAML:
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return encodeYAML(w, v)
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			return fmt.Errorf("format response: %w", err)
		}
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}
}

// Projects renders a project list
func Projects(w io.Writer, format Format, projects []platform.Project) error {
	if format != FormatTable {
		return marshal(w, format, projects)
	}
	rows := pterm.TableData{{"NAME", "ID", "TYPE", "STATUS"}}
	for _, p := range projects {
		rows = append(rows, []string{p.Name, p.ID, p.Type, p.Status})
	}
	return table(w, rows)
}

// Environments renders an environment list
func Environments(w io.Writer, format Format, envs []platform.Environment) error {
	if format != FormatTable {
		return marshal(w, format, envs)
	}
	rows := pterm.TableData{{"NAME", "ID", "BRANCH", "STATUS"}}
	for _, e := range envs {
		rows = append(rows, []string{e.UniqueName, e.ID, e.Branch, e.Status})
	}
	return table(w, rows)
}

// Deployments renders a deployment list
func Deployments(w io.Writer, format Format, deployments []platform.Deployment) error {
	if format != FormatTable {
		return marshal(w, format, deployments)
	}
	rows := pterm.TableData{{"ID", "STATUS", "BRANCH", "IMAGE", "CREATED"}}
	for _, d := range deployments {
		rows = append(rows, []string{d.ID, d.Status, d.Branch, d.Image, d.CreatedAt})
	}
	return table(w, rows)
}

func table(w io.Writer, rows pterm.TableData) error {
	return pterm.DefaultTable.
		WithWriter(w).
		WithHasHeader().
		WithSeparator("   ").
		WithData(rows).
		Render()
}

func marshal(w io.Writer, format Format, v any) error {
	if format == FormatYAML {
		return encodeYAML(w, v)
	}
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(encoded))
	return err
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
