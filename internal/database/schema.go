package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema lists the DDL statements applied by Migrate, in dependency order.
// Each statement is idempotent so Migrate can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36)     NOT NULL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		name          VARCHAR(255) NOT NULL,
		phone         VARCHAR(32)  NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at    DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at    DATETIME(3)  NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS experiences (
		id          CHAR(36)      NOT NULL PRIMARY KEY,
		title       VARCHAR(255)  NOT NULL,
		description TEXT          NOT NULL,
		location    VARCHAR(255)  NOT NULL,
		price       DECIMAL(10,2) NOT NULL,
		image_url   VARCHAR(1024) NOT NULL DEFAULT '',
		category    VARCHAR(64)   NOT NULL,
		rating      DECIMAL(2,1)  NOT NULL DEFAULT 0.0,
		duration    INT           NOT NULL,
		created_at  DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at  DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		KEY idx_experiences_category (category),
		KEY idx_experiences_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS slots (
		id            CHAR(36)    NOT NULL PRIMARY KEY,
		experience_id CHAR(36)    NOT NULL,
		date          DATE        NOT NULL,
		start_time    CHAR(5)     NOT NULL,
		end_time      CHAR(5)     NOT NULL,
		capacity      INT         NOT NULL,
		booked_count  INT         NOT NULL DEFAULT 0,
		created_at    DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at    DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		KEY idx_slots_experience_date (experience_id, date, start_time),
		CONSTRAINT fk_slots_experience FOREIGN KEY (experience_id) REFERENCES experiences(id) ON DELETE CASCADE,
		CONSTRAINT chk_slots_capacity CHECK (capacity >= 0 AND booked_count >= 0 AND booked_count <= capacity)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS promo_codes (
		code           VARCHAR(64)   NOT NULL PRIMARY KEY,
		discount_type  ENUM('PERCENTAGE','FLAT') NOT NULL,
		discount_value DECIMAL(10,2) NOT NULL,
		valid_from     DATETIME(3)   NOT NULL,
		valid_to       DATETIME(3)   NOT NULL,
		active         TINYINT(1)    NOT NULL DEFAULT 1,
		created_at     DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		CONSTRAINT chk_promo_value CHECK (discount_value >= 0)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_bin`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id            CHAR(36)      NOT NULL PRIMARY KEY,
		user_id       CHAR(36)      NOT NULL,
		experience_id CHAR(36)      NOT NULL,
		slot_id       CHAR(36)      NOT NULL,
		total_price   DECIMAL(10,2) NOT NULL,
		promo_code    VARCHAR(64)   NULL,
		status        ENUM('CONFIRMED','CANCELLED','COMPLETED') NOT NULL DEFAULT 'CONFIRMED',
		created_at    DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
		updated_at    DATETIME(3)   NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
		KEY idx_bookings_user_created (user_id, created_at),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id),
		CONSTRAINT fk_bookings_experience FOREIGN KEY (experience_id) REFERENCES experiences(id),
		CONSTRAINT fk_bookings_slot FOREIGN KEY (slot_id) REFERENCES slots(id),
		CONSTRAINT chk_bookings_price CHECK (total_price >= 0)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema.  Statements run one at a time because the
// driver is not opened with multiStatements.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate statement %d: %w", i, err)
		}
	}
	return nil
}
