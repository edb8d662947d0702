package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/clinicore/clinic-api/internal/config"
	"github.com/clinicore/clinic-api/internal/model"
	"github.com/clinicore/clinic-api/pkg/security"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password TEXT NOT NULL,
	full_name TEXT NOT NULL,
	role TEXT NOT NULL,
	email TEXT,
	phone TEXT,
	is_active INTEGER DEFAULT 1,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS patients (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	national_id TEXT UNIQUE,
	name TEXT NOT NULL,
	phone TEXT NOT NULL,
	email TEXT,
	date_of_birth TEXT,
	gender TEXT,
	address TEXT,
	emergency_contact TEXT,
	blood_type TEXT,
	allergies TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS appointments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient_id INTEGER NOT NULL,
	doctor_name TEXT NOT NULL,
	appointment_date TEXT NOT NULL,
	appointment_time TEXT NOT NULL,
	status TEXT DEFAULT 'Scheduled',
	appointment_type TEXT DEFAULT 'Regular',
	notes TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (patient_id) REFERENCES patients (id)
);

CREATE TABLE IF NOT EXISTS medical_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient_id INTEGER NOT NULL,
	visit_date TEXT NOT NULL,
	diagnosis TEXT,
	prescription TEXT,
	symptoms TEXT,
	tests_ordered TEXT,
	notes TEXT,
	doctor_name TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (patient_id) REFERENCES patients (id)
);

CREATE TABLE IF NOT EXISTS bills (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	patient_id INTEGER NOT NULL,
	appointment_id INTEGER,
	amount REAL NOT NULL,
	paid_amount REAL DEFAULT 0,
	payment_status TEXT DEFAULT 'Unpaid',
	services TEXT,
	payment_method TEXT,
	bill_date TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (patient_id) REFERENCES patients (id),
	FOREIGN KEY (appointment_id) REFERENCES appointments (id)
);
`

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite handles one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the schema if it does not exist yet.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// SeedAdmin inserts the initial administrator account when the users
// table is empty, so a fresh database is immediately usable.
func SeedAdmin(ctx context.Context, db *sqlx.DB, hasher security.PasswordHasher, seed config.AdminSeed) error {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM users"); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	query := `
		INSERT INTO users (username, password, full_name, role, email, phone, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, '', 1, ?)
	`
	_, err = db.ExecContext(ctx, query,
		seed.Username, hash, seed.FullName, model.RoleAdmin, seed.Email, time.Now())
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	return nil
}
