package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	machines := filepath.Join(dir, "machines.json")
	vendors := filepath.Join(dir, "vendors.csv")
	cfgPath := filepath.Join(dir, "test.yaml")

	files := map[string]string{
		machines: `[
  {"name": "Bag Sealer", "type": "sealing", "cost": 18000, "manpower_savings": 1, "vendor_refs": ["v2"]},
  {"name": "Powder Packer", "type": "packing", "cost": 25000, "manpower_savings": 2, "vendor_refs": ["v1", "v9"]}
]`,
		vendors: "id,vendor_name,location,contact,link,machine_types\n" +
			"v1,Sri Murugan Engineering,Coimbatore,98400 00001,,packing\n" +
			"v2,Chennai Seal Tech,Chennai,98400 00002,,sealing\n",
		cfgPath: "http:\n  port: 8000\n" +
			"catalog:\n  machines_path: " + machines + "\n  vendors_path: " + vendors + "\n" +
			"llm:\n  provider: none\n",
	}
	for p, content := range files {
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return cfgPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestROICmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"roi", "--cost", "25000", "--workers", "2"}, "1.39\n"},
		{[]string{"roi", "--cost", "30000", "--workers", "1", "--rate", "12000"}, "2.5\n"},
		{[]string{"roi", "--cost", "25000"}, "N/A\n"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			got, err := run(t, tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestROICmd_RequiresCost(t *testing.T) {
	if _, err := run(t, "roi", "--workers", "2"); err == nil {
		t.Error("expected error without --cost")
	}
}

func TestSuggestCmd(t *testing.T) {
	cfg := writeTestConfig(t)

	got, err := run(t, "suggest", "--config", cfg, "I", "need", "help", "packing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Suggested: Powder Packer\nEstimated Cost: ₹25000\nROI: 1.39 months\n" +
		"Manpower Savings: Replaces 2 workers\nVendors: Sri Murugan Engineering\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestSuggestCmd_JSONFallback(t *testing.T) {
	cfg := writeTestConfig(t)

	got, err := run(t, "suggest", "--config", cfg, "--json", "welding brackets")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		MachineName string `json:"machine_name"`
		Source      string `json:"source"`
		Vendors     []any  `json:"vendors"`
	}
	if err := json.Unmarshal([]byte(got), &body); err != nil {
		t.Fatalf("decode output: %v\n%s", err, got)
	}
	if body.MachineName != "Custom automation solution" || body.Source != "static" {
		t.Errorf("unexpected suggestion: %+v", body)
	}
	if body.Vendors == nil {
		t.Error("expected an empty vendors list, not null")
	}
}

func TestCatalogMachinesCmd(t *testing.T) {
	got, err := run(t, "catalog", "machines", "--config", writeTestConfig(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got:\n%s", got)
	}
	if !strings.HasPrefix(lines[1], "Bag Sealer") || !strings.Contains(lines[2], "v1,v9") {
		t.Errorf("unexpected listing:\n%s", got)
	}
}

func TestCatalogMachinesCmd_MissingConfig(t *testing.T) {
	if _, err := run(t, "catalog", "machines", "--config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestVersionCmd(t *testing.T) {
	got, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "advisorctl dev") {
		t.Errorf("unexpected version output: %q", got)
	}
}
