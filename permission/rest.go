package permission

import "strconv"

// RestModel is the permission set of one user.
type RestModel struct {
	Id          uint32   `json:"-"`
	Permissions []string `json:"permissions"`
}

func (r RestModel) GetName() string {
	return "permissions"
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

func Transform(userId uint32, models []Model) RestModel {
	rm := RestModel{Id: userId, Permissions: make([]string, 0, len(models))}
	for _, m := range models {
		rm.Permissions = append(rm.Permissions, m.name)
	}
	return rm
}
