package domain

import "time"

// BuildInfo records the artifacts produced for one target.
type BuildInfo struct {
	Target           string    `json:"target,omitzero"`
	Arch             string    `json:"arch,omitzero"`
	Platform         string    `json:"platform,omitzero"`
	Objects          []string  `json:"objects,omitempty"`
	ArchiveHash      string    `json:"archive_hash,omitzero"`
	LinkerScriptHash string    `json:"linker_script_hash,omitzero"`
	Timestamp        time.Time `json:"timestamp,omitzero"`
}

// Artifacts lists the files a successful pipeline run produced.
type Artifacts struct {
	Objects             []string
	Archive             string
	DefaultLinkerScript string
	MergedLinkerScript  string
}
