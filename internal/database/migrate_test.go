package database

import (
	"strings"
	"testing"
)

func TestSplitStatements(t *testing.T) {
	script := `-- comment
CREATE TABLE a (
    id INT
);

INSERT INTO a VALUES (1),
    (2);
SELECT 1`
	got := splitStatements(script)
	if len(got) != 3 {
		t.Fatalf("got %d statements: %q", len(got), got)
	}
	if !strings.HasPrefix(got[0], "CREATE TABLE a") || strings.HasSuffix(got[0], ";") {
		t.Errorf("stmt 0 = %q", got[0])
	}
	if !strings.Contains(got[1], "(2)") {
		t.Errorf("stmt 1 = %q", got[1])
	}
	if got[2] != "SELECT 1" {
		t.Errorf("stmt 2 = %q", got[2])
	}
}

func TestMigrationFiles(t *testing.T) {
	files, err := migrationFiles()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"001_schema.sql", "002_seed.sql", "003_catalog_details.sql"}
	if strings.Join(files, ",") != strings.Join(want, ",") {
		t.Errorf("files = %v, want %v", files, want)
	}
	for _, f := range files {
		b, _ := migrationFS.ReadFile("migrations/" + f)
		if len(splitStatements(string(b))) == 0 {
			t.Errorf("%s has no statements", f)
		}
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN("app", "pw", "db", "3306", "resorts")
	for _, part := range []string{"app:pw@tcp(db:3306)/resorts", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}
