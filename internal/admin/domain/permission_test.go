package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanDeniesMissingKeys(t *testing.T) {
	var nilMap PermissionMap
	assert.False(t, nilMap.Can(ResourceProducts, ActionAdd))

	m := PermissionMap{ResourceProducts: {ActionAdd: true}}
	assert.True(t, m.Can(ResourceProducts, ActionAdd))
	assert.False(t, m.Can(ResourceProducts, ActionDelete))
	assert.False(t, m.Can(ResourceServices, ActionAdd))
}

func TestDefaultPermissionsPerRole(t *testing.T) {
	super := DefaultPermissions(RoleSuperAdmin)
	regular := DefaultPermissions(RoleAdmin)

	for resource, actions := range PermissionSchema {
		for _, action := range actions {
			assert.True(t, super.Can(resource, action), "super %s.%s", resource, action)
			assert.False(t, regular.Can(resource, action), "regular %s.%s", resource, action)
		}
	}
}

func TestMergeNeverMissesSchemaKeys(t *testing.T) {
	stored := PermissionMap{
		ResourceProducts: {ActionAdd: true, ActionEdit: true},
		"legacy_pages":   {ActionView: true}, // dropped: schema is authoritative
	}

	merged := MergePermissions(stored, DefaultPermissions(RoleAdmin))

	for resource, actions := range PermissionSchema {
		cells, ok := merged[resource]
		require.True(t, ok, "resource %s missing after merge", resource)
		for _, action := range actions {
			_, ok := cells[action]
			require.True(t, ok, "action %s.%s missing after merge", resource, action)
		}
	}

	assert.True(t, merged.Can(ResourceProducts, ActionAdd))
	assert.True(t, merged.Can(ResourceProducts, ActionEdit))
	assert.False(t, merged.Can(ResourceProducts, ActionDelete))
	_, hasLegacy := merged["legacy_pages"]
	assert.False(t, hasLegacy)
}

func TestMergeNilStoredEqualsDefaults(t *testing.T) {
	defaults := DefaultPermissions(RoleSuperAdmin)
	merged := MergePermissions(nil, defaults)
	assert.Equal(t, defaults, merged)
}

func TestMergeRetrofitsNewResources(t *testing.T) {
	// Stored grid predates the shipments resource.
	stored := PermissionMap{ResourceServices: {ActionView: true}}

	asSuper := MergePermissions(stored, DefaultPermissions(RoleSuperAdmin))
	assert.True(t, asSuper.Can(ResourceShipments, ActionEdit))

	asRegular := MergePermissions(stored, DefaultPermissions(RoleAdmin))
	assert.False(t, asRegular.Can(ResourceShipments, ActionEdit))
}

func TestMergeDoesNotAliasDefaults(t *testing.T) {
	defaults := DefaultPermissions(RoleAdmin)
	merged := MergePermissions(PermissionMap{ResourceBlog: {ActionAdd: true}}, defaults)

	assert.True(t, merged.Can(ResourceBlog, ActionAdd))
	assert.False(t, defaults.Can(ResourceBlog, ActionAdd))
}
