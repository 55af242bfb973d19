package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries the office identity and policy defaults. Request options
// override these; they in turn override the built-in values below, which
// match the paper forms currently in use.
type Config struct {
	RegisseurName          string
	RegisseurCIN           string
	RegisseurCINValidUntil string
	ProvinceName           string
	CommuneName            string
	CityName               string
	Chapter                string
	Article                string
	Program                string
	Project                string
	Line                   string
	RCARAgeLimit           int
	RCARAdhesionNumber     string
	LogLevel               string
}

func Load() Config {
	return Config{
		RegisseurName:          getEnv("REGIE_REGISSEUR_NAME", "MAJDA TAKNOUTI"),
		RegisseurCIN:           getEnv("REGIE_REGISSEUR_CIN", "I 528862"),
		RegisseurCINValidUntil: getEnv("REGIE_REGISSEUR_CIN_VALID_UNTIL", "30/09/2030"),
		ProvinceName:           getEnv("REGIE_PROVINCE_NAME", "FQUIH BEN SALAH"),
		CommuneName:            getEnv("REGIE_COMMUNE_NAME", "OULED NACEUR"),
		CityName:               getEnv("REGIE_CITY_NAME", "Ouled Naceur"),
		Chapter:                getEnv("REGIE_BUDGET_CHAP", "10"),
		Article:                getEnv("REGIE_BUDGET_ART", "20"),
		Program:                getEnv("REGIE_BUDGET_PROG", "20"),
		Project:                getEnv("REGIE_BUDGET_PROJ", "10"),
		Line:                   getEnv("REGIE_BUDGET_LIGNE", "14"),
		RCARAgeLimit:           getEnvInt("REGIE_RCAR_AGE_LIMIT", 60),
		RCARAdhesionNumber:     getEnv("REGIE_RCAR_ADHESION_NUMBER", "35160001"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.RCARAgeLimit <= 0 || c.RCARAgeLimit > 120 {
		return fmt.Errorf("REGIE_RCAR_AGE_LIMIT must be between 1 and 120")
	}
	if c.RegisseurName == "" {
		return fmt.Errorf("REGIE_REGISSEUR_NAME must not be empty")
	}
	return nil
}
