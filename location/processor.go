package location

import (
	"aa-wizard-industry/database"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func GetById(_ logrus.FieldLogger, db *gorm.DB) func(id int64) (Model, error) {
	return func(id int64) (Model, error) {
		return database.ModelProvider[Model, entity](db)(getById(id), makeLocation)()
	}
}

func GetAll(_ logrus.FieldLogger, db *gorm.DB) ([]Model, error) {
	return database.ModelSliceProvider[Model, entity](db)(getAll(), makeLocation)()
}

// Index is an in-memory view of the stored locations keyed by id.
type Index map[int64]Model

func (i Index) Get(id int64) (Model, bool) {
	m, ok := i[id]
	return m, ok
}

func (i Index) Put(m Model) {
	i[m.id] = m
}

func GetIndex(l logrus.FieldLogger, db *gorm.DB) (Index, error) {
	ms, err := GetAll(l, db)
	if err != nil {
		return nil, err
	}
	idx := make(Index, len(ms))
	for _, m := range ms {
		idx.Put(m)
	}
	return idx, nil
}

// Save stores the location, and first the parent a synthesized office carries.
func Save(l logrus.FieldLogger, db *gorm.DB) func(m Model) error {
	return func(m Model) error {
		if p, ok := m.Parent(); ok {
			if err := Save(l, db)(p); err != nil {
				return err
			}
		}
		err := upsert(db, m)
		if err != nil {
			l.WithError(err).Errorf("Unable to save location [%d] [%s].", m.Id(), m.Name())
			return err
		}
		l.Debugf("Saved location [%d] [%s].", m.Id(), m.Name())
		return nil
	}
}
