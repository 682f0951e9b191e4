package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" apart from "empty" so a partial file only overrides
// what it names.
type JsonConfig struct {
	APIURL         *string `json:"api_url"`
	CallbackURL    *string `json:"callback_url"`
	DataDir        *string `json:"data_dir"`
	LogLevel       *string `json:"log_level"`
	MaxAvatarBytes *int64  `json:"max_avatar_bytes"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// -c or -config. Without either flag it does nothing. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != nil {
		cfg.APIURL = *jc.APIURL
	}
	if jc.CallbackURL != nil {
		cfg.CallbackURL = *jc.CallbackURL
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.MaxAvatarBytes != nil {
		cfg.MaxAvatarBytes = *jc.MaxAvatarBytes
	}
}
