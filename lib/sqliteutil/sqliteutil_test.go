package sqliteutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSchema = `CREATE TABLE things (
    thing_id TEXT PRIMARY KEY,
    thing_name TEXT NOT NULL
);`

func TestOpenWithSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.db")

	db, err := OpenWithSchema(testSchema, path)
	require.NoError(t, err)

	_, err = db.Exec("INSERT INTO things (thing_id, thing_name) VALUES ('a', 'first')")
	require.NoError(t, err)

	var mode string
	err = db.QueryRow("PRAGMA journal_mode").Scan(&mode)
	require.NoError(t, err)
	require.Equal(t, "wal", mode)

	err = db.Close()
	require.NoError(t, err)

	// reopening applies the schema again without complaint
	db, err = OpenWithSchema(testSchema, path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT thing_name FROM things WHERE thing_id = 'a'").Scan(&name)
	require.NoError(t, err)
	require.Equal(t, "first", name)
}

func TestConfigSelectsFile(t *testing.T) {
	db, err := Config{File: filepath.Join(t.TempDir(), "test.db")}.OpenDB()
	require.NoError(t, err)
	db.Close()

	_, err = Config{}.OpenDB()
	require.Error(t, err)
}
