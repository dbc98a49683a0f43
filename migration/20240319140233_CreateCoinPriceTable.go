package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240319140233, Down20240319140233)
}

func Up20240319140233(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS coin_prices (
		coin_uid VARCHAR(100),
		currency_code VARCHAR(10),
		value DECIMAL(40,20) NOT NULL,
		diff24h DECIMAL(40,20) NULL,
		timestamp BIGINT NOT NULL DEFAULT 0,

        PRIMARY KEY (coin_uid, currency_code)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240319140233(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS coin_prices;")
	if err != nil {
		return err
	}
	return nil
}
