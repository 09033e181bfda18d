// Config loading for the kpwrite CLI. The config file supplies
// defaults for flags the user would otherwise repeat on every call
// (database path, keyfile); flags always win over config values.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config keys.
const (
	cfgKeyDatabase = "database"
	cfgKeyKeyfile  = "keyfile"
)

// loadConfig reads the config file. With an explicit path, a missing
// or unreadable file is an error; otherwise .kpwrite.yaml is searched
// in the working directory, then the home directory, and absence is
// fine.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".kpwrite")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return v, nil
}
