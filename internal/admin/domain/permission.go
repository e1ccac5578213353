package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Actions gateable per resource.
const (
	ActionAdd      = "add"
	ActionEdit     = "edit"
	ActionDelete   = "delete"
	ActionView     = "view"
	ActionMarkRead = "markRead"
)

// Manageable back-office resources.
const (
	ResourceServices  = "services"
	ResourceProducts  = "products"
	ResourceClients   = "clients"
	ResourceMessages  = "messages"
	ResourceNews      = "news"
	ResourceBlog      = "blog"
	ResourceAds       = "ads"
	ResourceShipments = "shipments"
	ResourceAdmins    = "admins"
)

// PermissionSchema is the authoritative resource/action grid. Stored
// permission maps are merged against it on every read, so adding a resource
// here retrofits existing admin records: Super Admins gain it, regular admins
// get it withheld until explicitly toggled.
var PermissionSchema = map[string][]string{
	ResourceServices:  {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceProducts:  {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceClients:   {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceMessages:  {ActionView, ActionDelete, ActionMarkRead},
	ResourceNews:      {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceBlog:      {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceAds:       {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceShipments: {ActionAdd, ActionEdit, ActionDelete, ActionView},
	ResourceAdmins:    {ActionAdd, ActionEdit, ActionDelete, ActionView},
}

// PermissionMap is the per-admin boolean grid keyed resource then action.
type PermissionMap map[string]map[string]bool

// Can reports whether the action is granted. Missing maps, resources or
// actions are all denials.
func (m PermissionMap) Can(resource, action string) bool {
	if m == nil {
		return false
	}
	actions, ok := m[resource]
	if !ok {
		return false
	}
	return actions[action]
}

// DefaultPermissions builds the schema skeleton for a role: every grid cell
// present, all true for a Super Admin and all false otherwise.
func DefaultPermissions(role Role) PermissionMap {
	grant := role == RoleSuperAdmin
	out := make(PermissionMap, len(PermissionSchema))
	for resource, actions := range PermissionSchema {
		cells := make(map[string]bool, len(actions))
		for _, action := range actions {
			cells[action] = grant
		}
		out[resource] = cells
	}
	return out
}

// MergePermissions overlays stored grants onto a copy of defaults. Keys
// present only in defaults keep the default value; keys present only in
// stored are dropped, the schema is authoritative.
func MergePermissions(stored, defaults PermissionMap) PermissionMap {
	out := make(PermissionMap, len(defaults))
	for resource, actions := range defaults {
		cells := make(map[string]bool, len(actions))
		for action, granted := range actions {
			cells[action] = granted
		}
		out[resource] = cells
	}
	if stored == nil {
		return out
	}
	for resource, actions := range stored {
		cells, ok := out[resource]
		if !ok {
			continue
		}
		for action, granted := range actions {
			if _, ok := cells[action]; ok {
				cells[action] = granted
			}
		}
	}
	return out
}

func (m PermissionMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *PermissionMap) Scan(value any) error {
	if value == nil {
		*m = PermissionMap{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("permissions: cannot scan %T", value)
	}
	if len(raw) == 0 {
		*m = PermissionMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}

func (PermissionMap) GormDataType() string { return "json" }

func (PermissionMap) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	case "mysql":
		return "json"
	default:
		return "text"
	}
}
