package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/ui"
	"gopkg.in/yaml.v3"
)

// Output formats shared by the listing commands
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func checkFormat(format string, extra ...string) error {
	allowed := append([]string{formatTable, formatJSON, formatYAML}, extra...)
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected one of: %s)", format, strings.Join(allowed, ", "))
}

// writeStructured prints v as JSON or YAML. It reports false for any
// other format so the caller can render its own table.
func writeStructured(format string, v interface{}) (bool, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, fmt.Errorf("failed to encode JSON: %w", err)
		}
		ui.Raw(string(data) + "\n")
		return true, nil
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("failed to encode YAML: %w", err)
		}
		ui.Raw(string(data))
		return true, nil
	}
	return false, nil
}
