package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/archscan/domain"
)

// EncodeJSON returns an indented JSON string for the given value.
func EncodeJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal JSON", err)
	}
	return string(data), nil
}

// WriteJSON writes indented JSON for the given value to the writer.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode JSON", err)
	}
	return nil
}

// WriteYAML writes YAML for the given value to the writer.
func WriteYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return domain.NewOutputError("failed to encode YAML", err)
	}
	return nil
}

// HeaderWidth is the width of the rule under main headers
const HeaderWidth = 40

// Styles holds the console styles of text reports.
// The zero-color variant renders every style as plain text.
type Styles struct {
	Header     lipgloss.Style
	Success    lipgloss.Style
	Failure    lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Suggestion lipgloss.Style
	Muted      lipgloss.Style
}

// NewStyles returns colored styles when color is true and plain styles otherwise
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{plain, plain, plain, plain, plain, plain, plain}
	}
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Failure:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Suggestion: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Muted:      lipgloss.NewStyle().Faint(true),
	}
}

// StylesFor picks colored styles when w is a terminal and NO_COLOR is unset
func StylesFor(w io.Writer) Styles {
	if os.Getenv("NO_COLOR") != "" {
		return NewStyles(false)
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return NewStyles(true)
	}
	return NewStyles(false)
}

// FormatMainHeader creates a standardized main header
func (s Styles) FormatMainHeader(title string) string {
	var builder strings.Builder
	builder.WriteString(s.Header.Render(title) + "\n")
	builder.WriteString(strings.Repeat("=", HeaderWidth) + "\n\n")
	return builder.String()
}

// FormatSectionHeader creates a standardized section header
func (s Styles) FormatSectionHeader(title string) string {
	return fmt.Sprintf("%s\n%s\n", s.Header.Render(strings.ToUpper(title)), strings.Repeat("-", len(title)))
}
