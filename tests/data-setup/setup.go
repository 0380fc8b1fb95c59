package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	"gopkg.in/yaml.v3"

	"github.com/RupeshP0713/roomrent-backend/internal/identity"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`
}

type Owner struct {
	Name     string `yaml:"name"`
	WhatsApp string `yaml:"whatsapp"`
	Address  string `yaml:"address"`
}

type Tenant struct {
	Name          string `yaml:"name"`
	Mobile        string `yaml:"mobile"`
	Area          string `yaml:"area"`
	Caste         string `yaml:"caste"`
	FamilyMembers int    `yaml:"family_members"`
}

type SetupData struct {
	ConfigFile string   `yaml:"config_file"`
	Owners     []Owner  `yaml:"owners"`
	Tenants    []Tenant `yaml:"tenants"`
}

func main() {
	setupFile := "tests/data-setup/seed.yaml"
	if _, err := os.Stat(setupFile); os.IsNotExist(err) {
		setupFile = "seed.yaml"
	}

	setupData, err := readSetupFile(setupFile)
	if err != nil {
		log.Fatalf("Failed to read setup file: %v", err)
	}

	configPath := resolveConfigPath(setupData.ConfigFile)
	config, err := readConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	db, err := connectDB(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := populateData(db, setupData); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("✅ Test data successfully populated!")
}

func readSetupFile(filename string) (*SetupData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var setupData SetupData
	if err := yaml.Unmarshal(data, &setupData); err != nil {
		return nil, err
	}

	return &setupData, nil
}

func resolveConfigPath(configPath string) string {
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	projectRoot := findProjectRoot()
	fullPath := filepath.Join(projectRoot, configPath)
	if _, err := os.Stat(fullPath); err == nil {
		return fullPath
	}

	return configPath
}

func findProjectRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "."
}

func readConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func connectDB(config *Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host,
		config.Database.Port,
		config.Database.User,
		config.Database.Password,
		config.Database.Database,
		config.Database.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Connected to database: %s@%s:%d/%s",
		config.Database.User,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database)

	return db, nil
}

func populateData(db *sql.DB, data *SetupData) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	for _, o := range data.Owners {
		log.Printf("Creating owner: %s", o.Name)
		_, err := tx.Exec(`
			INSERT INTO owners (id, name, whatsapp, address, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, identity.OwnerID(o.WhatsApp), o.Name, o.WhatsApp, o.Address, now)
		if err != nil {
			return fmt.Errorf("inserting owner %s: %w", o.Name, err)
		}
	}

	for _, t := range data.Tenants {
		log.Printf("Creating tenant: %s", t.Name)
		_, err := tx.Exec(`
			INSERT INTO tenants (id, name, mobile, area, caste, family_members, status, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, 'Waiting', true, $7)
			ON CONFLICT (id) DO NOTHING
		`, identity.TenantID(t.Mobile), t.Name, t.Mobile, t.Area, t.Caste, t.FamilyMembers, now)
		if err != nil {
			return fmt.Errorf("inserting tenant %s: %w", t.Name, err)
		}
	}

	return tx.Commit()
}
