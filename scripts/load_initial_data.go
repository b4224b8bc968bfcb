package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // config validation loads DISPLAY_TIMEZONE

	"staffing-backoffice/internal/auth"
	"staffing-backoffice/internal/config"
	"staffing-backoffice/internal/database"
	"staffing-backoffice/internal/database/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClientTypeData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type ShiftData struct {
	Name      string `yaml:"name"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type SocietyData struct {
	Name            string `yaml:"name"`
	ClientType      string `yaml:"client_type"`
	Address         string `yaml:"address"`
	City            string `yaml:"city"`
	ContactPerson   string `yaml:"contact_person"`
	ContactPhone    string `yaml:"contact_phone"`
	GuardCount      int    `yaml:"guard_count"`
	SupervisorCount int    `yaml:"supervisor_count"`
	BouncerCount    int    `yaml:"bouncer_count"`
	GuardRate       string `yaml:"guard_rate"`
	SupervisorRate  string `yaml:"supervisor_rate"`
	BouncerRate     string `yaml:"bouncer_rate"`
	IsActive        *bool  `yaml:"is_active"`
}

type EmployeeData struct {
	FullName string `yaml:"full_name"`
	Phone    string `yaml:"phone"`
	Role     string `yaml:"role"`
	IsActive *bool  `yaml:"is_active"`
}

// File structures
type ClientTypesFile struct {
	ClientTypes []ClientTypeData `yaml:"client_types"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type SocietiesFile struct {
	Societies []SocietyData `yaml:"societies"`
}

type EmployeesFile struct {
	Employees []EmployeeData `yaml:"employees"`
}

func main() {
	tokenRole := flag.String("issue-token", "", "print a development token for this role (admin, manager, supervisor) after loading")
	tokenPhone := flag.String("phone", "", "employee phone the token is issued for; required for supervisor tokens")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, cfg.SeedDataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")

	if *tokenRole != "" {
		token, err := issueToken(db, cfg, auth.Role(*tokenRole), *tokenPhone)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
	}
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clientTypeFiles, err := loadYAML[ClientTypesFile](dataDir, "client_types")
	if err != nil {
		return fmt.Errorf("failed to load client types: %w", err)
	}
	shiftFiles, err := loadYAML[ShiftsFile](dataDir, "shifts")
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}
	societyFiles, err := loadYAML[SocietiesFile](dataDir, "societies")
	if err != nil {
		return fmt.Errorf("failed to load societies: %w", err)
	}
	employeeFiles, err := loadYAML[EmployeesFile](dataDir, "employees")
	if err != nil {
		return fmt.Errorf("failed to load employees: %w", err)
	}

	// Client types first; societies reference them by name
	clientTypeMap := make(map[string]*models.ClientType)
	created, total := 0, 0
	for _, file := range clientTypeFiles {
		for _, data := range file.ClientTypes {
			ct, isNew, err := createClientType(db, data)
			if err != nil {
				return fmt.Errorf("failed to create client type %s: %w", data.Name, err)
			}
			clientTypeMap[data.Name] = ct
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("📋 Client types: %d created, %d total", created, total)

	created, total = 0, 0
	for _, file := range shiftFiles {
		for _, data := range file.Shifts {
			isNew, err := createShift(db, data)
			if err != nil {
				return fmt.Errorf("failed to create shift %s: %w", data.Name, err)
			}
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", created, total)

	created, total = 0, 0
	for _, file := range societyFiles {
		for _, data := range file.Societies {
			isNew, err := createSociety(db, data, clientTypeMap)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create society %s: %v", data.Name, err)
				continue
			}
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("📋 Societies: %d created, %d total", created, total)

	created, total = 0, 0
	for _, file := range employeeFiles {
		for _, data := range file.Employees {
			isNew, err := createEmployee(db, data)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create employee %s: %v", data.FullName, err)
				continue
			}
			total++
			if isNew {
				created++
			}
		}
	}
	log.Printf("📋 Employees: %d created, %d total", created, total)

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path mentions kind
func loadYAML[T any](dataDir, kind string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func createClientType(db *gorm.DB, data ClientTypeData) (*models.ClientType, bool, error) {
	var ct models.ClientType
	err := db.Where("name = ?", data.Name).First(&ct).Error
	if err == nil {
		return &ct, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query client type: %w", err)
	}

	ct = models.ClientType{Name: data.Name, Description: data.Description}
	if err := db.Create(&ct).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create client type: %w", err)
	}
	return &ct, true, nil
}

func createShift(db *gorm.DB, data ShiftData) (bool, error) {
	var shift models.Shift
	err := db.Where("name = ?", data.Name).First(&shift).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query shift: %w", err)
	}

	shift = models.Shift{Name: data.Name, StartTime: data.StartTime, EndTime: data.EndTime}
	if err := db.Create(&shift).Error; err != nil {
		return false, fmt.Errorf("failed to create shift: %w", err)
	}
	return true, nil
}

func createSociety(db *gorm.DB, data SocietyData, clientTypeMap map[string]*models.ClientType) (bool, error) {
	ct := clientTypeMap[data.ClientType]
	if ct == nil {
		return false, fmt.Errorf("client type %s not found for society %s", data.ClientType, data.Name)
	}

	var society models.Society
	err := db.Where("name = ? AND client_type_id = ?", data.Name, ct.ID).First(&society).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query society: %w", err)
	}

	society = models.Society{
		Name:            data.Name,
		ClientTypeID:    ct.ID,
		Address:         data.Address,
		City:            data.City,
		ContactPerson:   data.ContactPerson,
		ContactPhone:    data.ContactPhone,
		GuardCount:      data.GuardCount,
		SupervisorCount: data.SupervisorCount,
		BouncerCount:    data.BouncerCount,
		IsActive:        data.IsActive == nil || *data.IsActive,
	}
	for _, rate := range []struct {
		raw string
		dst *decimal.Decimal
	}{
		{data.GuardRate, &society.GuardRate},
		{data.SupervisorRate, &society.SupervisorRate},
		{data.BouncerRate, &society.BouncerRate},
	} {
		if rate.raw == "" {
			continue
		}
		v, err := decimal.NewFromString(rate.raw)
		if err != nil {
			return false, fmt.Errorf("invalid rate %q: %w", rate.raw, err)
		}
		*rate.dst = v
	}

	if err := db.Create(&society).Error; err != nil {
		return false, fmt.Errorf("failed to create society: %w", err)
	}
	return true, nil
}

func createEmployee(db *gorm.DB, data EmployeeData) (bool, error) {
	role := models.EmployeeRole(data.Role)
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", data.Role)
	}

	var employee models.Employee
	err := db.Where("phone = ?", data.Phone).First(&employee).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query employee: %w", err)
	}

	employee = models.Employee{
		FullName: data.FullName,
		Phone:    data.Phone,
		Role:     role,
		IsActive: data.IsActive == nil || *data.IsActive,
	}
	if err := db.Create(&employee).Error; err != nil {
		return false, fmt.Errorf("failed to create employee: %w", err)
	}
	return true, nil
}

// issueToken signs a token for local development. Supervisor tokens carry the
// seeded supervisor's id so check-ins are attributed to them.
func issueToken(db *gorm.DB, cfg *config.Config, role auth.Role, phone string) (string, error) {
	if !role.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}
	principal := auth.Principal{Name: string(role), Role: role}

	if phone != "" {
		var employee models.Employee
		if err := db.Where("phone = ?", phone).First(&employee).Error; err != nil {
			return "", fmt.Errorf("failed to find employee %s: %w", phone, err)
		}
		principal.UserID = employee.ID
		principal.Name = employee.FullName
	}
	if role == auth.RoleSupervisor && phone == "" {
		return "", fmt.Errorf("supervisor tokens need -phone")
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return "", err
	}
	return tokens.GenerateJWT(principal)
}
