package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240312101500, Down20240312101500)
}

func Up20240312101500(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS coins (
		uid VARCHAR(100),
		name VARCHAR(255) NOT NULL,
		code VARCHAR(50) NOT NULL,
		market_cap_rank INT NULL,
		coin_gecko_id VARCHAR(100) NULL,

        PRIMARY KEY (uid)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240312101500(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS coins;")
	if err != nil {
		return err
	}
	return nil
}
