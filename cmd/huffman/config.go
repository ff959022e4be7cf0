package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

type Configuration struct {
	Sentinel  string `json:"sentinel"`
	ShowTree  bool   `json:"show_tree"`
	Indent    int    `json:"indent"`
	Verbosity int    `json:"verbosity"`
	DSN       string `json:"dsn"`
	TableName string `json:"table_name"`
}

func DefaultConfiguration() Configuration {
	return Configuration{
		Sentinel:  "-1",
		ShowTree:  true,
		Indent:    5,
		Verbosity: 0,
		DSN:       "",
		TableName: "default",
	}
}

// LoadConfiguration reads filename over the defaults.  An empty filename
// yields the defaults.
func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	if config.Indent < 0 {
		return config, fmt.Errorf("indent must not be negative, got %d", config.Indent)
	}
	return config, nil
}

func (c Configuration) LogLevel() slog.Level {
	switch {
	case c.Verbosity >= 2:
		return slog.LevelDebug
	case c.Verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func printConfiguration(config Configuration, logger *slog.Logger) {
	logger.Info(fmt.Sprintf("Sentinel: %q", config.Sentinel), "module", "config")
	logger.Info(fmt.Sprintf("Show tree: %t", config.ShowTree), "module", "config")
	logger.Info(fmt.Sprintf("Indent: %d", config.Indent), "module", "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "module", "config")
	logger.Info(fmt.Sprintf("Code store: %t", config.DSN != ""), "module", "config")
	logger.Info(fmt.Sprintf("Table name: %s", config.TableName), "module", "config")
}
