package main

import (
	"strings"
	"testing"
)

func TestCLIAddShowListFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "add", "dc/poison_ivy/model_a.stl", "misc/crate_v2.stl")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Added record 1: dc/poison_ivy/model_a.stl")
	requireContains(t, out, "Added record 2: misc/crate_v2.stl")

	_, _, err = runCLI(t, env, "add", "dc/poison_ivy/model_a.stl")
	if err == nil {
		t.Fatal("expected duplicate add to fail")
	}

	out, _, err = runCLI(t, env, "add", "--skip-existing", "dc/poison_ivy/model_a.stl")
	if err != nil {
		t.Fatalf("add --skip-existing: %v", err)
	}
	requireContains(t, out, "Nothing added")

	out, _, err = runCLI(t, env, "show", "1")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "dc/poison_ivy/model_a.stl")
	requireContains(t, out, "model_a.stl")

	out, _, err = runCLI(t, env, "show", "--path", "misc/crate_v2.stl")
	if err != nil {
		t.Fatalf("show --path: %v", err)
	}
	requireContains(t, out, "crate_v2.stl")

	if _, _, err := runCLI(t, env, "show", "99"); err == nil {
		t.Fatal("expected show of missing record to fail")
	}

	out, _, err = runCLI(t, env, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "model_a.stl")
	requireContains(t, out, "crate_v2.stl")
	requireContains(t, out, "2 of 2 records")
}

func TestCLIEnrichDryRunAndApply(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "add", "dc/poison_ivy/model_a.stl"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, _, err := runCLI(t, env, "enrich")
	if err != nil {
		t.Fatalf("enrich dry run: %v", err)
	}
	requireContains(t, out, "dry-run")
	requireContains(t, out, "franchise")
	requireContains(t, out, "dc_comics")

	// dry run must not persist anything
	out, _, err = runCLI(t, env, "show", "1")
	if err != nil {
		t.Fatalf("show after dry run: %v", err)
	}
	if strings.Contains(out, "dc_comics") {
		t.Fatalf("dry run leaked writes:\n%s", out)
	}

	out, _, err = runCLI(t, env, "enrich", "--apply")
	if err != nil {
		t.Fatalf("enrich apply: %v", err)
	}
	requireContains(t, out, "applied")
	requireContains(t, out, "1 changed")

	out, _, err = runCLI(t, env, "show", "1")
	if err != nil {
		t.Fatalf("show after apply: %v", err)
	}
	requireContains(t, out, "dc_comics")
	requireContains(t, out, "poison_ivy")

	// second apply is a no-op
	out, _, err = runCLI(t, env, "enrich", "--apply")
	if err != nil {
		t.Fatalf("enrich re-apply: %v", err)
	}
	requireContains(t, out, "0 changed")
}

func TestCLIEnrichSingleRecord(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "add", "dc/poison_ivy/model_a.stl"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, _, err := runCLI(t, env, "enrich", "--id", "1", "--apply")
	if err != nil {
		t.Fatalf("enrich --id: %v", err)
	}
	requireContains(t, out, "record 1")
	requireContains(t, out, "dc_comics")

	if _, _, err := runCLI(t, env, "enrich", "--id", "42"); err == nil {
		t.Fatal("expected enrich of missing record to fail")
	}
}

func TestCLIVocabCheck(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "vocab", "check")
	if err != nil {
		t.Fatalf("vocab check: %v", err)
	}
	requireContains(t, out, "Franchises: 1")
	requireContains(t, out, env.vocabDir)
}
