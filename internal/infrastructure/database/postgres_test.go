package database

import (
	"testing"

	"doctor-profile-service/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "doctor",
		Password: "secret",
		Name:     "directory",
		SSLMode:  "require",
		TimeZone: "UTC",
	})

	assert.Equal(t, "host=localhost user=doctor password=secret dbname=directory port=5432 sslmode=require TimeZone=UTC", dsn)
}
