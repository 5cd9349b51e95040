package location

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"strings"
)

// ContainerAsset is the part of a stored asset the container upkeep needs.
type ContainerAsset struct {
	ItemId     int64
	LocationId int64
	Name       string
}

// AssetSource looks up stored assets for the container upkeep.
type AssetSource interface {
	// Offices returns the corporation assets flagged OfficeFolder.
	Offices() ([]ContainerAsset, error)
	// Containers returns the singleton corporation assets that can hold other items.
	Containers() ([]ContainerAsset, error)
	// CorporationAsset finds a corporation asset by item id.
	CorporationAsset(itemId int64) (ContainerAsset, bool, error)
	// CharacterAsset finds a character asset by item id.
	CharacterAsset(itemId int64) (ContainerAsset, bool, error)
}

// CreateOfficeLocations gives every corporation office without a location one named after its item id.
func CreateOfficeLocations(l logrus.FieldLogger, db *gorm.DB, src AssetSource) (int, error) {
	offices, err := src.Offices()
	if err != nil {
		return 0, err
	}
	return createMissing(l, db, offices, func(a ContainerAsset) string {
		return OfficeName(a.ItemId)
	})
}

// CreateContainerLocations gives every corporation container without a location one named after the container.
func CreateContainerLocations(l logrus.FieldLogger, db *gorm.DB, src AssetSource) (int, error) {
	cans, err := src.Containers()
	if err != nil {
		return 0, err
	}
	return createMissing(l, db, cans, func(a ContainerAsset) string {
		return ContainerName(a.Name)
	})
}

func createMissing(l logrus.FieldLogger, db *gorm.DB, assets []ContainerAsset, name func(a ContainerAsset) string) (int, error) {
	idx, err := GetIndex(l, db)
	if err != nil {
		return 0, err
	}
	created := 0
	for _, a := range assets {
		if _, ok := idx.Get(a.ItemId); ok {
			continue
		}
		var systemId uint32
		var parentId int64
		if p, ok := idx.Get(a.LocationId); ok {
			systemId = p.SystemId()
			parentId = p.Id()
		}
		m := NewModel(a.ItemId, name(a), systemId, parentId)
		if err = Save(l, db)(m); err != nil {
			return created, err
		}
		idx.Put(m)
		created++
	}
	l.Debugf("Created [%d] container locations.", created)
	return created, nil
}

// UpdateOfficeLocations links every office location without a system to the location its office sits in.
func UpdateOfficeLocations(l logrus.FieldLogger, db *gorm.DB, src AssetSource) (int, error) {
	idx, err := GetIndex(l, db)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, m := range idx {
		if !strings.HasPrefix(m.Name(), officePrefix) || m.SystemId() != 0 {
			continue
		}
		a, ok, err := src.CorporationAsset(m.Id())
		if err != nil {
			return updated, err
		}
		if !ok {
			continue
		}
		p, ok := idx.Get(a.LocationId)
		if !ok {
			continue
		}
		if err = Save(l, db)(NewModel(m.Id(), m.Name(), p.SystemId(), p.Id())); err != nil {
			return updated, err
		}
		updated++
	}
	l.Debugf("Updated [%d] office locations.", updated)
	return updated, nil
}

// UpdateContainerLocations re-links every container location to where its container now sits and renames it after
// the container. Corporation assets are searched before character assets.
func UpdateContainerLocations(l logrus.FieldLogger, db *gorm.DB, src AssetSource) (int, error) {
	idx, err := GetIndex(l, db)
	if err != nil {
		return 0, err
	}
	updated := 0
	for _, m := range idx {
		if !strings.HasPrefix(m.Name(), containerPrefix) {
			continue
		}
		a, ok, err := src.CorporationAsset(m.Id())
		if err != nil {
			return updated, err
		}
		if !ok {
			a, ok, err = src.CharacterAsset(m.Id())
			if err != nil {
				return updated, err
			}
			if !ok {
				continue
			}
		}
		p, ok := idx.Get(a.LocationId)
		if !ok {
			continue
		}
		if err = Save(l, db)(NewModel(m.Id(), ContainerName(a.Name), p.SystemId(), p.Id())); err != nil {
			return updated, err
		}
		updated++
	}
	l.Debugf("Updated [%d] container locations.", updated)
	return updated, nil
}
