package dataset

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the dataset file at path. JSON is the canonical
// format; files ending in .yaml/.yml are parsed as YAML with the same shape.
//
// Load is strict about I/O but lenient about content: a JSON file that fails
// a direct parse gets one best-effort retry (BOM stripped, outermost object
// extracted) before Load gives up. Callers that receive an error are expected
// to fall back to Empty() and keep running.
func Load(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var ds Dataset
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return nil, fmt.Errorf("parse dataset yaml: %w", err)
		}
		ds.normalize()
		return &ds, nil
	}

	if err := json.Unmarshal(raw, &ds); err == nil {
		ds.normalize()
		return &ds, nil
	}

	salvaged := extractJSON(string(raw))
	if salvaged == "" {
		return nil, fmt.Errorf("parse dataset json: no JSON object found in %s", path)
	}
	if err := json.Unmarshal([]byte(salvaged), &ds); err != nil {
		return nil, fmt.Errorf("parse dataset json: %w", err)
	}

	slog.Warn("dataset parsed via salvage, check the file encoding", "path", path)
	ds.normalize()
	return &ds, nil
}

// extractJSON strips a UTF-8 BOM and surrounding noise, returning the text
// between the first '{' and the last '}'. Empty string when no object exists.
func extractJSON(s string) string {
	s = strings.TrimPrefix(s, "\uFEFF")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
