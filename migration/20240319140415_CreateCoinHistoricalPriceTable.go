package migration

import (
	"database/sql"
	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up20240319140415, Down20240319140415)
}

func Up20240319140415(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS coin_historical_prices (
		coin_uid VARCHAR(100),
		currency_code VARCHAR(10),
		timestamp BIGINT,
		value DECIMAL(40,20) NOT NULL,

        PRIMARY KEY (coin_uid, currency_code, timestamp)
	);`)
	if err != nil {
		return err
	}
	return nil
}

func Down20240319140415(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec("DROP TABLE IF EXISTS coin_historical_prices;")
	if err != nil {
		return err
	}
	return nil
}
