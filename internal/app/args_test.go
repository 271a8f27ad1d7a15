package app

import (
	"encoding/json"
	"testing"
)

func TestParseArgsKeepsJSONTypes(t *testing.T) {
	args, err := parseArgs([]string{
		"id=L1",
		"revision=5",
		"completed=true",
		`task={"list_id":1,"title":"milk"}`,
		"title=",
		"note=a=b",
	})
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if args["id"] != "L1" {
		t.Fatalf("id = %#v", args["id"])
	}
	if args["revision"] != json.Number("5") {
		t.Fatalf("revision = %#v", args["revision"])
	}
	if args["completed"] != true {
		t.Fatalf("completed = %#v", args["completed"])
	}
	task, ok := args["task"].(map[string]any)
	if !ok || task["title"] != "milk" {
		t.Fatalf("task = %#v", args["task"])
	}
	if args["title"] != "" {
		t.Fatalf("title = %#v", args["title"])
	}
	if args["note"] != "a=b" {
		t.Fatalf("note = %#v", args["note"])
	}
}

func TestParseArgsRejectsMissingKey(t *testing.T) {
	for _, raw := range []string{"novalue", "=x"} {
		if _, err := parseArgs([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseLimit(t *testing.T) {
	if n, err := parseLimit("7"); err != nil || n != 7 {
		t.Fatalf("parseLimit(7) = %d, %v", n, err)
	}
	if _, err := parseLimit("0"); err == nil {
		t.Fatalf("expected error for zero limit")
	}
}
