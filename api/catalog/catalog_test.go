package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivelives/tablet-api/models"
)

const itemsLua = `return {
	['bandage'] = {
		label = 'Bandage',
		weight = 115,
	},

	['burger'] = {
		label = 'Burger',
		weight = 220,
		client = { status = { hunger = 200000 } },
	},

	['nolabel'] = {
		weight = 1,
	},
}`

const weaponsLua = `return {
	Weapons = {
		['WEAPON_PISTOL'] = {
			label = 'Pistol',
			weight = 1130,
			durability = 0.1,
			ammoname = 'ammo-9',
			client = { image = 'pistol.png' },
		},
		['WEAPON_KNIFE'] = {
			label = 'Knife',
			weight = 300,
		},
	},
}`

func TestParseItems(t *testing.T) {
	items := Parse(itemsLua, itemPattern)
	assert.Equal(t, []models.CatalogItem{
		{ID: "bandage", Name: "Bandage"},
		{ID: "burger", Name: "Burger"},
	}, items)
}

func TestParseWeaponsWithNestedTables(t *testing.T) {
	items := Parse(weaponsLua, weaponPattern)
	assert.Equal(t, []models.CatalogItem{
		{ID: "WEAPON_PISTOL", Name: "Pistol"},
		{ID: "WEAPON_KNIFE", Name: "Knife"},
	}, items)
}

func TestItems(t *testing.T) {
	dir := t.TempDir()
	items := filepath.Join(dir, "items.lua")
	weapons := filepath.Join(dir, "weapons.lua")
	require.NoError(t, os.WriteFile(items, []byte(itemsLua), 0o600))
	require.NoError(t, os.WriteFile(weapons, []byte(weaponsLua), 0o600))

	all, err := New(items, weapons).Items()
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "WEAPON_KNIFE", all[3].ID)
}

func TestItemsMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.lua"), "").Items()
	assert.Error(t, err)
}
