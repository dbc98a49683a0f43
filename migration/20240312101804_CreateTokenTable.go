package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240312101804, Down20240312101804)
}

func Up20240312101804(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS tokens (
		coin_uid VARCHAR(100),
		blockchain_uid VARCHAR(100),
		type VARCHAR(50) NOT NULL,
		decimals INT NOT NULL DEFAULT 0,
		reference VARCHAR(255) NULL,

        PRIMARY KEY (coin_uid, blockchain_uid),
        INDEX reference (reference)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240312101804(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS tokens;")
	if err != nil {
		return err
	}
	return nil
}
