package main

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/gorgonia/tictac"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	configFile  = "tictac/config.yaml"
	datasetFile = "tictac/positions.gob"
)

// loadConfig reads the file named by --config, or the user's configuration
// file if there is one, over the defaults.
func loadConfig(cmd *cobra.Command) (tictac.Config, error) {
	conf := tictac.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := xdg.SearchConfigFile(configFile)
		if err != nil {
			logrus.Debug("No configuration file found, using defaults")
			return conf, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.WithStack(err)
	}
	if err = yaml.Unmarshal(data, &conf); err != nil {
		return conf, errors.Wrapf(err, "parse %s", path)
	}
	if !conf.IsValid() {
		return conf, errors.Errorf("invalid configuration in %s: %+v", path, conf)
	}
	logrus.WithField("file", path).Debug("Configuration loaded")
	return conf, nil
}

// datasetPath returns the --output/--input flag value or the default data file.
func datasetPath(cmd *cobra.Command, flag string) (string, error) {
	path, _ := cmd.Flags().GetString(flag)
	if path != "" {
		return path, nil
	}
	path, err := xdg.DataFile(datasetFile)
	return path, errors.WithStack(err)
}
