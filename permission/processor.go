package permission

import (
	"aa-wizard-industry/database"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"os"
	"strconv"
	"strings"
)

const EnvAdministrators = "ADMINISTRATOR_USER_IDS"

var ErrUnknown = errors.New("unknown permission")

func GetForUser(_ logrus.FieldLogger, db *gorm.DB) func(userId uint32) ([]Model, error) {
	return func(userId uint32) ([]Model, error) {
		return database.ModelSliceProvider[Model, entity](db)(getForUser(userId), makePermission)()
	}
}

func Has(db *gorm.DB) func(userId uint32, name string) (bool, error) {
	return func(userId uint32, name string) (bool, error) {
		count, err := countForUser(db, userId, name)
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}
}

// Assign replaces the permissions held by the user.
func Assign(l logrus.FieldLogger, db *gorm.DB) func(userId uint32, names []string) error {
	return func(userId uint32, names []string) error {
		for _, n := range names {
			if !Known(n) {
				return fmt.Errorf("%w: %s", ErrUnknown, n)
			}
		}
		err := replace(db, userId, names)
		if err != nil {
			l.WithError(err).Errorf("Unable to assign permissions to user [%d].", userId)
			return err
		}
		l.Infof("Assigned permissions %v to user [%d].", names, userId)
		return nil
	}
}

// Bootstrap grants every permission to the users listed in ADMINISTRATOR_USER_IDS.
func Bootstrap(l logrus.FieldLogger, db *gorm.DB) error {
	val, ok := os.LookupEnv(EnvAdministrators)
	if !ok || val == "" {
		return nil
	}
	for _, s := range strings.Split(val, ",") {
		id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
		if err != nil {
			l.WithError(err).Warnf("Ignoring administrator user id [%s].", s)
			continue
		}
		for _, n := range all {
			if err = grant(db, uint32(id), n); err != nil {
				return err
			}
		}
		l.Infof("Granted every permission to administrator [%d].", id)
	}
	return nil
}
