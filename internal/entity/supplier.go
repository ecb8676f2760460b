package entity

import (
	"fmt"
	"strings"
	"time"
)

// Supplier is a sourcing contact owned by one tenant. Rows are always scoped
// by the authenticated user's id.
type Supplier struct {
	ID          int       `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name,omitempty"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Country     string    `json:"country,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Validate checks the writable fields before persisting.
func (s *Supplier) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("supplier name is required")
	}
	if s.Email != "" && !strings.Contains(s.Email, "@") {
		return fmt.Errorf("supplier email is invalid")
	}
	return nil
}

/*
Mysql Table

CREATE TABLE suppliers (
	id INT AUTO_INCREMENT PRIMARY KEY,
	user_id VARCHAR(64) NOT NULL,
	name VARCHAR(255) NOT NULL,
	contact_name VARCHAR(255),
	email VARCHAR(255),
	phone VARCHAR(50),
	country VARCHAR(100),
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
);
*/
