package models

import (
	"hallbook/src/db"
	"hallbook/src/types"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Setting struct {
	ID           uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	SettingKey   string    `gorm:"uniqueIndex:name" json:"setting_key"`
	SettingValue string    `json:"setting_value"`
	Group        string    `gorm:"uniqueIndex:name" json:"group,omitempty"`

	types.Timestamps
}

// GetSetting looks up a setting value by key, falling back to def when the
// key is absent or the store is unreachable.
func GetSetting(key string, def string) string {
	var setting Setting
	db := db.GetDb()
	if err := db.
		Model(&Setting{}).
		Where(&Setting{SettingKey: key}).
		First(&setting).
		Error; err != nil {
		return def
	}
	return setting.SettingValue
}

func GetSettingFloat(key string, def float64) float64 {
	raw := GetSetting(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid numeric setting %s=%q: %s\n", key, raw, err.Error())
		return def
	}
	return v
}

// GetSettingList parses a comma-separated setting value.
func GetSettingList(key string, def []string) []string {
	raw := GetSetting(key, "")
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
