package entity

import "time"

// UsageRecord is one entry in a user's optimization history. It travels as a
// kafka event (fire-and-forget from the optimizer) and is persisted by the
// usage consumer.
type UsageRecord struct {
	ID            int64     `json:"id,omitempty"`
	UserID        string    `json:"user_id"`
	ProductID     string    `json:"product_id"`
	ResultID      string    `json:"result_id"`
	TargetMargin  float64   `json:"target_margin"`
	ScenarioCount int       `json:"scenario_count"`
	CreatedAt     time.Time `json:"created_at"`
}

/*
Mysql Table

CREATE TABLE usage_history (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	product_id VARCHAR(64) NOT NULL,
	result_id VARCHAR(36) NOT NULL,
	target_margin DOUBLE NOT NULL,
	scenario_count INT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
*/
