package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240402091150, Down20240402091150)
}

func Up20240402091150(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS custom_currencies (
		currency_code VARCHAR(10),
		telephone_code VARCHAR(10) NULL,
		units_per_dollar DECIMAL(40,20) NOT NULL,
		symbol VARCHAR(10) NULL,
		icon VARCHAR(255) NULL,

        PRIMARY KEY (currency_code)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240402091150(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS custom_currencies;")
	if err != nil {
		return err
	}
	return nil
}
