package permission

const (
	BasicAccess      = "basic_access"
	AddCharacter     = "add_character"
	AddCorporation   = "add_corporation"
	BlueprintCatalog = "blueprint_catalog"
	Administrate     = "administrate"
)

var all = []string{BasicAccess, AddCharacter, AddCorporation, BlueprintCatalog, Administrate}

func Known(name string) bool {
	for _, n := range all {
		if n == name {
			return true
		}
	}
	return false
}

type Model struct {
	userId uint32
	name   string
}

func (m Model) UserId() uint32 {
	return m.userId
}

func (m Model) Name() string {
	return m.name
}
