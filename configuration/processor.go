package configuration

import (
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"os"
	"sync"
	"time"
)

const EnvConfigFile = "CONFIG_FILE"

// MinInterval is the shortest accepted task interval. YAML integers decode as nanoseconds, so a bare 3600 lands
// far below it.
const MinInterval = time.Second

var ErrInvalid = errors.New("invalid configuration")

var config Model
var once sync.Once

// Get returns the process configuration. Values from the file named by CONFIG_FILE are laid over Default; a missing
// or unreadable file leaves the defaults in place.
func Get(l logrus.FieldLogger) Model {
	once.Do(func() {
		config = Default()
		path, ok := os.LookupEnv(EnvConfigFile)
		if !ok {
			return
		}
		c, err := Load(path)
		if err != nil {
			l.WithError(err).Warnf("Unable to load configuration file [%s], using defaults.", path)
			return
		}
		config = c
	})
	return config
}

func Load(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (Model, error) {
	c := Default()
	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return Model{}, err
	}
	if err = c.validate(); err != nil {
		return Model{}, err
	}
	return c, nil
}

func (c Model) validate() error {
	if c.Sync.Concurrency < 1 {
		return fmt.Errorf("%w: sync.concurrency must be positive, got %d", ErrInvalid, c.Sync.Concurrency)
	}
	for name, d := range map[string]time.Duration{
		"tasks.ownerSync":       c.Tasks.OwnerSync,
		"tasks.containerUpkeep": c.Tasks.ContainerUpkeep,
		"tasks.referenceImport": c.Tasks.ReferenceImport,
	} {
		if d < MinInterval {
			return fmt.Errorf("%w: %s must be at least %s, got %s", ErrInvalid, name, MinInterval, d)
		}
	}
	return nil
}

func (c Catalog) Excluded(typeId uint32) bool {
	for _, id := range c.ExcludedTypeIds {
		if id == typeId {
			return true
		}
	}
	return false
}

func (c Catalog) Canonical(metaGroupId uint32) bool {
	for _, id := range c.CanonicalMetaGroups {
		if id == metaGroupId {
			return true
		}
	}
	return false
}
