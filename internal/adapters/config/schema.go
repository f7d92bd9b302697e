package config

import "go.trai.ch/ukbuild/internal/core/domain"

// Filename is the optional configuration file looked up in the application directory.
const Filename = domain.ConfigFileName

// File represents the structure of the ukbuild.yaml configuration file.
type File struct {
	Tools      ToolsDTO `yaml:"tools"`
	Directives string   `yaml:"directives"`
	State      string   `yaml:"state"`
}

// ToolsDTO overrides the external programs the pipeline runs.
type ToolsDTO struct {
	Kraft string `yaml:"kraft"`
	Ar    string `yaml:"ar"`
}
