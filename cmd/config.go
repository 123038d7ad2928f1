package cmd

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string
	// RedisAddr enables the Redis order lock. Empty means an in-process lock.
	RedisAddr string

	// DeliveryPolicyFile overrides the built-in tariff. Empty means defaults.
	DeliveryPolicyFile string
	PaymentTimeout     time.Duration
	// Timezone is the zone rush delivery slots are checked in.
	Timezone string

	OutboxRelaySchedule string
	OutboxBatchSize     int

	OtelStdout bool
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KafkaHost on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Location loads Timezone, defaulting to Asia/Ho_Chi_Minh.
func (c Config) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = "Asia/Ho_Chi_Minh"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}
