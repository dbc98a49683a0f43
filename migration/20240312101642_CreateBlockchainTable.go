package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240312101642, Down20240312101642)
}

func Up20240312101642(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS blockchains (
		uid VARCHAR(100),
		name VARCHAR(255) NOT NULL,
		url VARCHAR(255) NULL,

        PRIMARY KEY (uid)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240312101642(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS blockchains;")
	if err != nil {
		return err
	}
	return nil
}
