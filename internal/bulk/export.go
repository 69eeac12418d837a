package bulk

import (
	"encoding/json"
	"strings"
)

// ExportFilename derives the download filename for an exported collection,
// e.g. "Staff List" -> "staff_list_data.json".
func ExportFilename(dataType string) string {
	name := strings.ToLower(strings.TrimSpace(dataType))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "export"
	}
	return name + "_data.json"
}

// MarshalExport serializes a collection as pretty-printed JSON with 2-space
// indentation, the shape accepted back by ValidateImport.
func MarshalExport(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
