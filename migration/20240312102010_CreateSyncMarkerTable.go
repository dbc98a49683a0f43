package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240312102010, Down20240312102010)
}

func Up20240312102010(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS sync_markers (
		` + "`key`" + ` VARCHAR(100),
		value VARCHAR(255) NOT NULL,

        PRIMARY KEY (` + "`key`" + `)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240312102010(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS sync_markers;")
	if err != nil {
		return err
	}
	return nil
}
