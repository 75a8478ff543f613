package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rwnicholas/WitcherScript/internal/runtime"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestImportSplicesDefinitionsIntoGlobals(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "signs.witcher", `aard igni_sign() { hunt "burn" }`)

	e := New(DefaultConfig())
	e.SetBaseDir(dir)
	if err := e.Run(`grimoire "signs.witcher"
contract result = igni_sign()`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := e.Env().Get("result")
	if !ok || v.String() != "burn" {
		t.Fatalf("expected imported function result, got %v ok=%v", v, ok)
	}
}

func TestCircularImportFails(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFile(t, dir, "a.witcher", `grimoire "b.witcher"`)
	writeFile(t, dir, "b.witcher", `grimoire "a.witcher"`)

	e := New(DefaultConfig())
	e.SetBaseDir(dir)
	err := e.Run(`grimoire "` + filepath.Base(aPath) + `"`)
	if err == nil {
		t.Fatalf("expected circular import error")
	}
}

func TestReimportAfterCompletionAlsoFails(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "once.witcher", `contract loaded = truth`)

	e := New(DefaultConfig())
	e.SetBaseDir(dir)
	err := e.Run(`
grimoire "once.witcher"
grimoire "once.witcher"`)
	if err == nil {
		t.Fatalf("expected re-import of a completed file to fail, per the never-cleared import set")
	}
}

func TestMissingGrimoireFails(t *testing.T) {
	e := New(DefaultConfig())
	e.SetBaseDir(t.TempDir())
	err := e.Run(`grimoire "does-not-exist.witcher"`)
	if err == nil {
		t.Fatalf("expected error for missing grimoire file")
	}
}

func TestMissingGrimoireFailsTheSameWayOnEveryAttempt(t *testing.T) {
	// A path that never resolves must never get marked as imported, so a
	// second attempt (even in a later statement run) reports
	// GrimoireNotFound again, not CircularImport.
	e := New(DefaultConfig())
	e.SetBaseDir(t.TempDir())

	const source = `grimoire "does-not-exist.witcher"`
	for i := 0; i < 2; i++ {
		err := e.Run(source)
		if err == nil {
			t.Fatalf("attempt %d: expected error for missing grimoire file", i)
		}
		rtErr, ok := err.(*runtime.RuntimeError)
		if !ok || rtErr.Kind != runtime.GrimoireNotFound {
			t.Fatalf("attempt %d: expected GrimoireNotFound kind, got %v", i, err)
		}
	}
}
