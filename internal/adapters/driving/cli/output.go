package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/lawdata/internal/core/domain"
)

// resolveFormat picks the --output flag, then the configured default.
func resolveFormat() (domain.OutputFormat, error) {
	if outputFormat != "" {
		format := domain.OutputFormat(strings.ToLower(outputFormat))
		if !format.IsValid() {
			return "", fmt.Errorf("%w: output format %q (want json or yaml)", domain.ErrInvalidInput, outputFormat)
		}
		return format, nil
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Output.Format, nil
		}
	}
	return domain.OutputJSON, nil
}

// render writes v in the selected format. JSON is indented on a terminal
// and compact otherwise.
func render(w io.Writer, v any) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	if format == domain.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	var data []byte
	if isTerminal(w) {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
