package main

import (
	"testing"
)

func TestFindCommand(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantJSON    bool
		wantErr     bool
		wantContain []string
	}{
		{
			name: "leaf",
			id:   "callTree_Node_0_1",
			wantContain: []string{
				"ID:        callTree_Node_0_1",
				"Depth:     2",
				"Ordinal:   1",
				"Last:      yes",
				"Visible:   yes",
				"name: org.example.dao.StockDao.check",
				"counter: 12345",
			},
		},
		{
			name:        "parent",
			id:          "callTree_Node_0",
			wantContain: []string{"Children:  2", "Expanded:  yes", "Last:      no"},
		},
		{
			name:        "json",
			id:          "callTree_Node",
			wantJSON:    true,
			wantContain: []string{`"hasChildren": true`, `"name": "org.example.web.OrderController.submit"`},
		},
		{
			name:    "unknown",
			id:      "callTree_Node_9",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runFind([]string{testDataPath(t, "calltree.json"), tt.id})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runFind() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, []string{"children:"})
		})
	}
}

func TestHeaderCommand(t *testing.T) {
	resetFlags(t)
	output, err := captureOutput(t, runHeader)
	if err != nil {
		t.Fatalf("runHeader() error = %v", err)
	}
	assertContains(t, output, []string{"Name\n", "%\n", "Total\n", "Count\n"})

	jsonOut = true
	output, err = captureOutput(t, runHeader)
	if err != nil {
		t.Fatalf("runHeader() error = %v", err)
	}
	assertJSON(t, output)
}
