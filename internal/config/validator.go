package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Validate checks values that env.Parse cannot check on its own.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf(ErrMsgInvalidLogLevel, c.LogLevel, strings.Join(validLogLevels, ", "))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf(ErrMsgInvalidLogFormat, c.LogFormat, strings.Join(validLogFormats, ", "))
	}

	files := []struct{ name, value string }{
		{"CONTENT_BUILDING_FILE", c.BuildingFile},
		{"CONTENT_RESOURCES_FILE", c.ResourcesFile},
		{"CONTENT_COMPONENTS_FILE", c.ComponentsFile},
		{"CONTENT_FOODS_FILE", c.FoodsFile},
		{"CONTENT_CROPS_FILE", c.CropsFile},
	}
	for _, f := range files {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf(ErrMsgEmptyContentFile, f.name)
		}
	}

	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup.
// A missing content directory is only a warning: CONTENT_SOURCE may create
// it, and otherwise every category simply loads empty. Fetching into an
// existing real directory overwrites the content files already there.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.ContentSource == "" {
		if _, err := os.Stat(c.ContentDir); err != nil {
			warnings = append(warnings, fmt.Sprintf(WarnMsgContentDirMissing, c.ContentDir))
		}
	} else if fi, err := os.Lstat(c.ContentDir); err == nil && fi.IsDir() {
		warnings = append(warnings, fmt.Sprintf(WarnMsgSourceReplacesFiles, c.ContentDir))
	}

	if c.ContentStrict && !c.IsDevelopment() {
		warnings = append(warnings, WarnMsgStrictOutsideDev)
	}

	return warnings
}
