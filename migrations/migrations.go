package migrations

import (
	"database/sql"
	"time"
)

// AutoMigrateOptimizationResults creates the optimization_results table if it does not exist.
func AutoMigrateOptimizationResults(retries int, dbs ...*sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS optimization_results (
			id VARCHAR(36) PRIMARY KEY,
			product_id VARCHAR(64) NOT NULL,
			user_id VARCHAR(255) NOT NULL,
			payload JSON NOT NULL,
			created_at DATETIME NOT NULL,
			INDEX idx_results_product_created (product_id, created_at)
		);
	`
	return execWithRetries(query, retries, dbs...)
}

// AutoMigrateUsageHistory creates the usage_history table if it does not exist.
func AutoMigrateUsageHistory(retries int, dbs ...*sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS usage_history (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			product_id VARCHAR(64) NOT NULL,
			result_id VARCHAR(36) NOT NULL,
			target_margin DOUBLE NOT NULL,
			scenario_count INT NOT NULL,
			created_at DATETIME NOT NULL,
			INDEX idx_usage_user_created (user_id, created_at)
		);
	`
	return execWithRetries(query, retries, dbs...)
}

// AutoMigrateSuppliers creates the suppliers table if it does not exist.
func AutoMigrateSuppliers(retries int, dbs ...*sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS suppliers (
			id INT AUTO_INCREMENT PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			contact_name VARCHAR(255) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(64) NOT NULL DEFAULT '',
			country VARCHAR(128) NOT NULL DEFAULT '',
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			INDEX idx_suppliers_user (user_id)
		);
	`
	return execWithRetries(query, retries, dbs...)
}

func execWithRetries(query string, retries int, dbs ...*sql.DB) error {
	for _, db := range dbs {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}
