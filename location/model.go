package location

import (
	"fmt"
	"time"
)

const (
	AssetSafetyId   int64 = 2004
	AssetSafetyName       = "Asset Safety"

	systemMin    int64 = 30_000_000
	systemMax    int64 = 33_000_000
	stationMin   int64 = 60_000_000
	stationMax   int64 = 64_000_000
	StructureMin int64 = 64_000_000

	FlagHangar       = "Hangar"
	FlagOfficeFolder = "OfficeFolder"

	officePrefix    = "Office #"
	containerPrefix = "Can: "
)

var resolvableFlags = map[string]bool{
	"Hangar":           true,
	"CorpDeliveries":   true,
	"Deliveries":       true,
	"AssetSafety":      true,
	"OfficeFolder":     true,
	"CorpSAG1":         true,
	"CorpSAG2":         true,
	"CorpSAG3":         true,
	"CorpSAG4":         true,
	"CorpSAG5":         true,
	"CorpSAG6":         true,
	"CorpSAG7":         true,
	"Impounded":        true,
	"HangarAll":        true,
	"ExpeditionHold":   true,
	"StructureDeedBay": true,
}

// Resolvable reports whether an item with the flag sits somewhere with a place of its own. Items fitted to or
// carried by another item are not.
func Resolvable(flag string) bool {
	return flag == "" || resolvableFlags[flag]
}

func IsSystem(id int64) bool {
	return id >= systemMin && id < systemMax
}

func IsStation(id int64) bool {
	return id >= stationMin && id < stationMax
}

func OfficeName(itemId int64) string {
	return fmt.Sprintf("%s%d", officePrefix, itemId)
}

func ContainerName(name string) string {
	return containerPrefix + name
}

type Model struct {
	id        int64
	name      string
	systemId  uint32
	parentId  int64
	updatedAt time.Time
	parent    *Model
}

func NewModel(id int64, name string, systemId uint32, parentId int64) Model {
	return Model{id: id, name: name, systemId: systemId, parentId: parentId}
}

func (m Model) Id() int64 {
	return m.id
}

func (m Model) Name() string {
	return m.name
}

// SystemId is zero when the solar system is unknown.
func (m Model) SystemId() uint32 {
	return m.systemId
}

func (m Model) ParentId() int64 {
	return m.parentId
}

func (m Model) UpdatedAt() time.Time {
	return m.updatedAt
}

// Parent is set on a synthesized office to the location the office sits in, so both can be stored together.
func (m Model) Parent() (Model, bool) {
	if m.parent == nil {
		return Model{}, false
	}
	return *m.parent, true
}

func (m Model) withParent(p Model) Model {
	m.parent = &p
	return m
}
