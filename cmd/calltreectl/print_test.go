package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestPrintCommand(t *testing.T) {
	tests := []struct {
		name           string
		file           string
		collapse       []string
		depth          int
		all            bool
		wantJSON       bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:  "full tree",
			file:  "calltree.json",
			depth: -1,
			wantContain: []string{
				"Name", "Total", "Count",
				"└▾org.example.web.OrderController.submit",
				"  ├▾org.example.service.OrderService.validate",
				"  │ └─org.example.dao.StockDao.check",
				"  └─org.example.dao.OrderDao.insert",
				"100.0%", "12.5%", "2.5s", "1.5ms", "12,345",
			},
			wantNotContain: []string{"(hidden)", "NAME"},
		},
		{
			name:           "depth one",
			file:           "calltree.json",
			depth:          1,
			wantContain:    []string{"├▸org.example.service.OrderService.validate", "OrderDao.insert"},
			wantNotContain: []string{"CustomerDao", "StockDao"},
		},
		{
			name:        "depth one with hidden rows",
			file:        "calltree.json",
			depth:       1,
			all:         true,
			wantContain: []string{"CustomerDao.findById (hidden)", "StockDao.check (hidden)"},
		},
		{
			name:           "collapse",
			file:           "calltree.json",
			depth:          -1,
			collapse:       []string{"callTree_Node_0"},
			wantContain:    []string{"validate", "OrderDao.insert"},
			wantNotContain: []string{"CustomerDao"},
		},
		{
			name:     "collapse unknown node",
			file:     "calltree.json",
			depth:    -1,
			collapse: []string{"callTree_Node_7"},
			wantErr:  true,
		},
		{
			name:        "json",
			file:        "calltree.json",
			depth:       -1,
			wantJSON:    true,
			wantContain: []string{`"header": [`, `"id": "callTree_Node_0_1"`, `"12,345"`},
		},
		{
			name:        "message only",
			file:        "nodata.json",
			depth:       -1,
			wantContain: []string{"No call tree available yet"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON
			printCollapse = tt.collapse
			printDepth = tt.depth
			printAll = tt.all

			output, err := captureOutput(t, func() error {
				return runPrint([]string{testDataPath(t, tt.file)})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runPrint() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestPrintCommand_SettingsFile(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "ascii.yaml")
	if err := os.WriteFile(path, []byte(`
glyphs:
  spacer: "| "
  lastSpacer: "  "
  nodeExpanded: "+-"
  lastNodeExpanded: "\\-"
  leaf: "|-"
  lastLeaf: "\\-"
`), 0o644); err != nil {
		t.Fatal(err)
	}
	settingsPath = path

	output, err := captureOutput(t, func() error {
		return runPrint([]string{testDataPath(t, "calltree.json")})
	})
	if err != nil {
		t.Fatalf("runPrint() error = %v", err)
	}

	assertContains(t, output, []string{`\-org.example.web.OrderController.submit`, `  | |-org.example.dao.CustomerDao.findById`})
	assertNotContains(t, output, []string{"├"})
}

func TestPrintCommand_MissingFile(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runPrint([]string{filepath.Join(t.TempDir(), "missing.json")})
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPrintCommand_JSONDuplicateTitles(t *testing.T) {
	resetFlags(t)
	path := filepath.Join(t.TempDir(), "dup.yaml")
	if err := os.WriteFile(path, []byte(`
columns:
  - title: Count
    field: total
`), 0o644); err != nil {
		t.Fatal(err)
	}
	settingsPath = path
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runPrint([]string{testDataPath(t, "calltree.json")})
	})
	if err != nil {
		t.Fatalf("runPrint() error = %v", err)
	}

	var got tableJSON
	if err := json.Unmarshal([]byte(output), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nOutput: %s", err, output)
	}
	wantHeader := []string{"Name", "%", "Total", "Count", "Count"}
	if len(got.Header) != len(wantHeader) {
		t.Fatalf("header = %v, want %v", got.Header, wantHeader)
	}
	for i := range wantHeader {
		if got.Header[i] != wantHeader[i] {
			t.Errorf("header[%d] = %q, want %q", i, got.Header[i], wantHeader[i])
		}
	}
	if len(got.Rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(got.Rows))
	}
	root := got.Rows[0]
	if len(root.Cells) != 5 {
		t.Fatalf("root cells = %v, want 5 cells", root.Cells)
	}
	if root.Cells[3] != "1" || root.Cells[4] != "2500000000" {
		t.Errorf("root count cells = %q, %q, want \"1\", \"2500000000\"", root.Cells[3], root.Cells[4])
	}
}
