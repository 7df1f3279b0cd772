package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habits/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetCurrentVersion_FreshDatabase(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_test.sql": {Data: []byte("CREATE TABLE test (id INTEGER);")},
	})

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		want    []int
		wantErr bool
	}{
		{
			name: "sorted by version",
			files: fstest.MapFS{
				"002_second.sql": {Data: []byte("SELECT 2;")},
				"001_first.sql":  {Data: []byte("SELECT 1;")},
				"README.md":      {Data: []byte("ignored")},
			},
			want: []int{1, 2},
		},
		{
			name: "duplicate version",
			files: fstest.MapFS{
				"001_a.sql": {Data: []byte("SELECT 1;")},
				"001_b.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
		{
			name: "missing name",
			files: fstest.MapFS{
				"001.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
		{
			name: "version zero",
			files: fstest.MapFS{
				"000_init.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(setupTestDB(t), tt.files)
			got, err := runner.ReadMigrationFiles()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadMigrationFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d migrations, want %d", len(got), len(tt.want))
			}
			for i, v := range tt.want {
				if got[i].Version != v {
					t.Errorf("migration[%d].Version = %d, want %d", i, got[i].Version, v)
				}
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"002_add.sql":    {Data: []byte("CREATE TABLE b (id INTEGER);")},
	})

	var logs []string
	applied, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}
	if len(logs) == 0 || !strings.Contains(logs[0], "2 migration") {
		t.Errorf("unexpected log output: %v", logs)
	}

	version, _ := runner.GetCurrentVersion()
	if version != 2 {
		t.Errorf("version after apply = %d, want 2", version)
	}

	applied, err = runner.ApplyMigrations(nil)
	if err != nil || applied != 0 {
		t.Errorf("second ApplyMigrations() = %d, %v; want 0, nil", applied, err)
	}

	if err := runner.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() after apply: %v", err)
	}
}

func TestApplyMigrations_FailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_ok.sql":     {Data: []byte("CREATE TABLE ok (id INTEGER);")},
		"002_broken.sql": {Data: []byte("CREATE TABLE broken (;")},
	})

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	version, _ := runner.GetCurrentVersion()
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := setupTestDB(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
	}
	runner := NewRunner(db, files)

	if err := runner.ValidateVersion(); err == nil {
		t.Error("ValidateVersion() should report pending migrations")
	}

	if _, err := db.Exec("CREATE TABLE schema_version (version INTEGER PRIMARY KEY)"); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (5)"); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ValidateVersion() error = %v, want ErrSchemaTooNew", err)
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("fs.Sub failed: %v", err)
	}

	db := setupTestDB(t)
	runner := NewRunner(db, sub)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("embedded migrations failed: %v", err)
	}

	for _, table := range []string{"habits", "habit_log"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("table %s missing after migration (count=%d, err=%v)", table, count, err)
		}
	}

	if _, err := db.Exec(`INSERT INTO habit_log (habit_id, day, state, updated_at) VALUES ('h', '2024-12-16', 'maybe', '')`); err == nil {
		t.Error("habit_log accepted an unknown state token")
	}
}

func TestEmbeddedPostgresMigrationsParse(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		t.Fatalf("fs.Sub failed: %v", err)
	}
	got, err := NewRunner(nil, sub).ReadMigrationFiles()
	if err != nil {
		t.Fatalf("ReadMigrationFiles failed: %v", err)
	}
	if len(got) == 0 || got[0].Version != 1 {
		t.Errorf("unexpected postgres migrations: %+v", got)
	}
}
