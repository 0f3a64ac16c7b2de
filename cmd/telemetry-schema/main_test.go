package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWriteSchema verifies the schema file is written and names the snapshot fields
func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "snapshot.json")

	if err := writeSchema(out, buildSchema()); err != nil {
		t.Fatalf("writeSchema failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Failed to read schema: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Schema is not valid JSON: %v", err)
	}
	for _, field := range []string{"flightTime", "maxHeight", "molesCO2", "Vinegar Rocket Telemetry Snapshot"} {
		if !strings.Contains(string(data), field) {
			t.Errorf("Expected schema to mention %q", field)
		}
	}

	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temp file to be renamed away")
	}
}
