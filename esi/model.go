package esi

import "time"

type RolesRestModel struct {
	Roles        []string `json:"roles"`
	RolesAtBase  []string `json:"roles_at_base"`
	RolesAtHq    []string `json:"roles_at_hq"`
	RolesAtOther []string `json:"roles_at_other"`
}

func (r RolesRestModel) Has(role string) bool {
	for _, v := range r.Roles {
		if v == role {
			return true
		}
	}
	return false
}

type StationRestModel struct {
	StationId uint32 `json:"station_id"`
	Name      string `json:"name"`
	SystemId  uint32 `json:"system_id"`
	TypeId    uint32 `json:"type_id"`
}

type StructureRestModel struct {
	Name          string `json:"name"`
	OwnerId       uint32 `json:"owner_id"`
	SolarSystemId uint32 `json:"solar_system_id"`
	TypeId        uint32 `json:"type_id"`
}

type SystemRestModel struct {
	SystemId        uint32  `json:"system_id"`
	Name            string  `json:"name"`
	ConstellationId uint32  `json:"constellation_id"`
	SecurityStatus  float64 `json:"security_status"`
}

type TypeRestModel struct {
	TypeId        uint32 `json:"type_id"`
	Name          string `json:"name"`
	GroupId       uint32 `json:"group_id"`
	MarketGroupId uint32 `json:"market_group_id"`
	Published     bool   `json:"published"`
}

type GroupRestModel struct {
	GroupId    uint32 `json:"group_id"`
	Name       string `json:"name"`
	CategoryId uint32 `json:"category_id"`
	Published  bool   `json:"published"`
}

type AssetRestModel struct {
	ItemId          int64  `json:"item_id"`
	TypeId          uint32 `json:"type_id"`
	Quantity        int32  `json:"quantity"`
	LocationId      int64  `json:"location_id"`
	LocationFlag    string `json:"location_flag"`
	LocationType    string `json:"location_type"`
	IsSingleton     bool   `json:"is_singleton"`
	IsBlueprintCopy bool   `json:"is_blueprint_copy"`
}

type NameRestModel struct {
	ItemId int64  `json:"item_id"`
	Name   string `json:"name"`
}

type JobRestModel struct {
	JobId                uint32     `json:"job_id"`
	ActivityId           uint32     `json:"activity_id"`
	BlueprintId          int64      `json:"blueprint_id"`
	BlueprintLocationId  int64      `json:"blueprint_location_id"`
	BlueprintTypeId      uint32     `json:"blueprint_type_id"`
	CompletedCharacterId uint32     `json:"completed_character_id"`
	CompletedDate        *time.Time `json:"completed_date"`
	Cost                 float64    `json:"cost"`
	Duration             int32      `json:"duration"`
	EndDate              time.Time  `json:"end_date"`
	FacilityId           int64      `json:"facility_id"`
	InstallerId          uint32     `json:"installer_id"`
	LicensedRuns         int32      `json:"licensed_runs"`
	LocationId           int64      `json:"location_id"`
	OutputLocationId     int64      `json:"output_location_id"`
	PauseDate            *time.Time `json:"pause_date"`
	Probability          float64    `json:"probability"`
	ProductTypeId        uint32     `json:"product_type_id"`
	Runs                 int32      `json:"runs"`
	StartDate            time.Time  `json:"start_date"`
	StationId            int64      `json:"station_id"`
	Status               string     `json:"status"`
	SuccessfulRuns       int32      `json:"successful_runs"`
}

// Location returns the facility-hosting location of the job. Character jobs report it as station_id and corporation
// jobs as location_id.
func (j JobRestModel) Location() int64 {
	if j.LocationId != 0 {
		return j.LocationId
	}
	return j.StationId
}

type BlueprintRestModel struct {
	ItemId             int64  `json:"item_id"`
	LocationFlag       string `json:"location_flag"`
	LocationId         int64  `json:"location_id"`
	MaterialEfficiency int32  `json:"material_efficiency"`
	Quantity           int32  `json:"quantity"`
	Runs               int32  `json:"runs"`
	TimeEfficiency     int32  `json:"time_efficiency"`
	TypeId             uint32 `json:"type_id"`
}
