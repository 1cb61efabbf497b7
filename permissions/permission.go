package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Roles  []string `json:"roles"`
	Action string   `json:"action"`
	Skip   bool     `json:"skip"`
}

type PermissionData struct {
	Actions []Permission `json:"actions"`
	Skip    bool         `json:"skip"`
}

func (r *PermissionData) FindPermission(action string) Permission {
	idx := slices.IndexFunc(r.Actions, func(rp Permission) bool {
		return rp.Action == action
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Actions[idx]
}

// Allows reports whether the given role may perform the action. Unknown
// actions are denied so a missing table entry never widens access.
func (r *PermissionData) Allows(action, role string) bool {
	if r.Skip {
		return true
	}

	permission := r.FindPermission(action)
	if permission.Action == "" {
		return false
	}

	if permission.Skip {
		return true
	}

	return slices.Contains(permission.Roles, role)
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("actions", len(permissions.Actions)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
