package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type testRecord struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testRecord{
		{Name: "comet", Count: 8},
		{Name: "stampede2", Count: 6},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "comet" || result[0].Count != 8 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testRecord{
		{Name: "flux", Count: 6},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 1 || result[0].Name != "flux" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_UnknownFormatDefaultsToYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testRecord{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Expected YAML fallback output: %v", err)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	w := NewFileWriterOrStdout(FormatYAML, path)
	if err := w.Serialize(context.Background(), testRecord{Name: "bridges", Count: 3}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal written manifest: %v", err)
	}
	if result.Name != "bridges" {
		t.Errorf("Unexpected record: %+v", result)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	if FormatJSON.IsUnknown() || FormatYAML.IsUnknown() {
		t.Error("known formats reported as unknown")
	}
	if !Format("table").IsUnknown() {
		t.Error("table format should be unknown")
	}
}
