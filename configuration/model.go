package configuration

import (
	"time"
)

type Model struct {
	Catalog Catalog `yaml:"catalog"`
	Sync    Sync    `yaml:"sync"`
	Tasks   Tasks   `yaml:"tasks"`
}

type Catalog struct {
	RootMarketGroupId   uint32   `yaml:"rootMarketGroupId"`
	VariantPrefix       string   `yaml:"variantPrefix"`
	ExcludedTypeIds     []uint32 `yaml:"excludedTypeIds"`
	CanonicalMetaGroups []uint32 `yaml:"canonicalMetaGroups"`
}

type Sync struct {
	Concurrency int `yaml:"concurrency"`
}

type Tasks struct {
	OwnerSync       time.Duration `yaml:"ownerSync"`
	ContainerUpkeep time.Duration `yaml:"containerUpkeep"`
	ReferenceImport time.Duration `yaml:"referenceImport"`
}

func Default() Model {
	return Model{
		Catalog: Catalog{
			RootMarketGroupId: 2,
			VariantPrefix:     "Civilian",
			ExcludedTypeIds: []uint32{
				47969, 48469, 48470, 47971, 48471, 48472, 47973,
				48473, 48474, 48095, 58973, 58974, 49973, 60514,
			},
			CanonicalMetaGroups: []uint32{1, 54},
		},
		Sync: Sync{
			Concurrency: 4,
		},
		Tasks: Tasks{
			OwnerSync:       time.Hour,
			ContainerUpkeep: 6 * time.Hour,
			ReferenceImport: 24 * time.Hour,
		},
	}
}
