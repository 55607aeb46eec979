package server

import (
	"encoding/json"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"image_load",
		"image_dimensions",
		"image_grayscale",
		"image_edge_detect",
		"image_convolve",
		"image_denoise",
		"image_crop",
		"image_sample_color",
		"image_dominant_colors",
	}

	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}
	for _, name := range want {
		if _, ok := byName[name]; !ok {
			t.Errorf("missing tool definition: %s", name)
		}
	}
}

func TestGetToolDefinitions_Schemas(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("empty description")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("schema type: got %v, want object", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("schema has no properties")
			}
			if _, ok := props["path"]; !ok {
				t.Error("schema is missing the path property")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("schema has no required fields")
			}
			for _, name := range required {
				if _, ok := props[name]; !ok {
					t.Errorf("required field %q has no property definition", name)
				}
			}

			// The definitions go over the wire; they must marshal cleanly.
			if _, err := json.Marshal(tool); err != nil {
				t.Errorf("definition does not marshal: %v", err)
			}
		})
	}
}

func TestToolDefinitions_MatchDispatchTable(t *testing.T) {
	// Every advertised tool must be executable. Dispatch failures for
	// known tools report argument or file errors, never "unknown tool".
	s := New()
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(tool.Name, json.RawMessage(`{"path":"/nonexistent.png"}`))
		if err != nil && err.Error() == "unknown tool: "+tool.Name {
			t.Errorf("tool %s is advertised but not dispatched", tool.Name)
		}
	}
}
