package ui

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"
)

// Форматы вывода
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, "✓ "+format+"\n", args...)
}

func Warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, "! "+format+"\n", args...)
}

func Error(w io.Writer, msg string) {
	errorColor.Fprintf(w, "Ошибка: %s\n", msg)
}

// Structured печатает v в JSON или YAML
func Structured(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("неизвестный формат вывода: %s", format)
	}
}

// ValidateFormat проверяет значение флага --output
func ValidateFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("неизвестный формат вывода %q, допустимо: %v", format, allowed)
}
