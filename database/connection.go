package database

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"os"
	"time"
)

type Migrator func(db *gorm.DB) error

type Configurator func(c *config)

type config struct {
	dsn        string
	migrations []Migrator
}

func SetMigrations(migrations ...Migrator) Configurator {
	return func(c *config) {
		c.migrations = migrations
	}
}

func SetDSN(dsn string) Configurator {
	return func(c *config) {
		c.dsn = dsn
	}
}

func dsnFromEnv() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
}

func Connect(l logrus.FieldLogger, configurators ...Configurator) *gorm.DB {
	c := &config{dsn: dsnFromEnv()}
	for _, configurator := range configurators {
		configurator(c)
	}

	db, err := gorm.Open(postgres.Open(c.dsn), &gorm.Config{
		Logger: logger.New(l, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		l.WithError(err).Fatalf("Unable to connect to database.")
	}

	err = Migrate(db, c.migrations...)
	if err != nil {
		l.WithError(err).Fatalf("Unable to migrate database.")
	}
	return db
}

func Migrate(db *gorm.DB, migrations ...Migrator) error {
	for _, m := range migrations {
		if err := m(db); err != nil {
			return err
		}
	}
	return nil
}
