package cmd

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	stdout, stderr, exitCode := setupTestDeps(t, `2024-03-14 09:00: arrived
2024-03-14 12:00: coding
2024-03-14 12:30: lunch **
2024-03-14 17:00: coding
2024-03-15 09:00: arrived
2024-03-15 12:00: mail
`)

	exportCSV()

	if *exitCode != -1 {
		t.Fatalf("unexpected exit(%d), stderr: %s", *exitCode, stderr.String())
	}

	records, err := csv.NewReader(stdout).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 day rows, got %d: %v", len(records), records)
	}
	if records[0][0] != "date" || records[0][1] != "hours" {
		t.Errorf("unexpected header: %v", records[0])
	}
	// 3h + 4h30m worked on the 14th, rounded down to whole hours.
	if records[1][0] != "2024-03-14" || records[1][1] != "7" {
		t.Errorf("unexpected first day row: %v", records[1])
	}
}

func TestExportCSV_EmptyTimelog(t *testing.T) {
	stdout, _, exitCode := setupTestDeps(t, "")

	exportCSV()

	if *exitCode != -1 {
		t.Fatalf("unexpected exit(%d)", *exitCode)
	}
	if strings.TrimSpace(stdout.String()) != "date,hours" {
		t.Errorf("expected a lone header, got %q", stdout.String())
	}
}

func TestExportJSON(t *testing.T) {
	stdout, stderr, exitCode := setupTestDeps(t, `2024-03-15 09:00: arrived
2024-03-15 12:00: coding
`)

	exportJSON()

	if *exitCode != -1 {
		t.Fatalf("unexpected exit(%d), stderr: %s", *exitCode, stderr.String())
	}

	var doc jsonExport
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if doc.EntryCount != 2 || len(doc.Entries) != 2 {
		t.Fatalf("expected 2 entries, got count=%d len=%d", doc.EntryCount, len(doc.Entries))
	}
	if doc.Entries[0].Timestamp != "2024-03-15 09:00" || doc.Entries[0].Comment != "arrived" {
		t.Errorf("unexpected first entry: %+v", doc.Entries[0])
	}
	if doc.ExportedAt == "" {
		t.Error("exported_at must be set")
	}
}

func TestExportJSON_MalformedTimelog(t *testing.T) {
	_, stderr, exitCode := setupTestDeps(t, "garbage line\n")

	exportJSON()

	if *exitCode != 1 {
		t.Fatalf("expected exit(1), got %d", *exitCode)
	}
	if !strings.Contains(stderr.String(), "Malformed timelog line 0") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}
