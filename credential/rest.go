package credential

import (
	"strconv"
	"time"
)

// RestModel carries tokens inbound only. Responses leave them empty.
type RestModel struct {
	Id           uint32    `json:"-"`
	CharacterId  uint32    `json:"characterId"`
	AccessToken  string    `json:"accessToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Scopes       []string  `json:"scopes"`
}

func (r RestModel) GetName() string {
	return "credentials"
}

func (r RestModel) GetID() string {
	return strconv.Itoa(int(r.Id))
}

func (r *RestModel) SetID(id string) error {
	if id == "" {
		return nil
	}
	v, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return err
	}
	r.Id = uint32(v)
	return nil
}

func Transform(m Model) RestModel {
	return RestModel{
		Id:          m.id,
		CharacterId: m.characterId,
		ExpiresAt:   m.expiry,
		Scopes:      m.scopes,
	}
}
