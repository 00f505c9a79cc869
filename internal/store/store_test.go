package store

import (
	"path/filepath"
	"testing"
)

// runStoreSuite exercises the Store contract against any implementation.
func runStoreSuite(t *testing.T, s MetadataStore) {
	t.Helper()

	// empty at start
	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %v", all)
	}

	// put and read back
	if err := s.Put("A1", "5"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("B1", "=A1+3"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	all, err = s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 2 || all["A1"] != "5" || all["B1"] != "=A1+3" {
		t.Errorf("unexpected contents: %v", all)
	}

	// overwrite
	if err := s.Put("A1", "7"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	all, _ = s.All()
	if all["A1"] != "7" {
		t.Errorf("expected overwrite to 7, got %q", all["A1"])
	}

	// delete
	if err := s.Delete("B1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	all, _ = s.All()
	if _, ok := all["B1"]; ok {
		t.Error("B1 should be deleted")
	}

	// delete of absent id is a no-op
	if err := s.Delete("J10"); err != nil {
		t.Errorf("Delete absent: %v", err)
	}

	// metadata
	if err := s.SetMetadata("last_saved", "now"); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	v, err := s.GetMetadata("last_saved")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if v != "now" {
		t.Errorf("metadata = %q", v)
	}

	// clear
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	all, _ = s.All()
	if len(all) != 0 {
		t.Errorf("expected empty store after Clear, got %v", all)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	runStoreSuite(t, m)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.db")
	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer s.Close()
	runStoreSuite(t, s)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := s.Put("C3", "=A1*2"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = NewSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	all, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all["C3"] != "=A1*2" {
		t.Errorf("expected C3 to survive reopen, got %v", all)
	}

	version, err := s.GetMetadata("schema_version")
	if err != nil {
		t.Fatalf("GetMetadata: %v", err)
	}
	if version != SchemaVersion {
		t.Errorf("schema_version = %q, expected %q", version, SchemaVersion)
	}
}

func TestSQLiteRejectsUnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.db")

	s, err := NewSQLite(path)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	if err := s.SetMetadata("schema_version", "999"); err != nil {
		t.Fatalf("SetMetadata: %v", err)
	}
	s.Close()

	if _, err := NewSQLite(path); err == nil {
		t.Error("expected error for unknown schema version")
	}
}

var _ MetadataStore = (*SQLite)(nil)
var _ MetadataStore = (*Memory)(nil)
