package domain

const (
	// DefaultKraft is the kernel build tool looked up on PATH.
	DefaultKraft = "kraft"
	// DefaultArchiver is the archiver looked up on PATH.
	DefaultArchiver = "ar"
	// DefaultStateFile is the build record file name inside the output directory.
	DefaultStateFile = "ukbuild_state.json"
	// ConfigFileName is the optional configuration file in the application directory.
	ConfigFileName = "ukbuild.yaml"
)

// Tools names the external programs the pipeline invokes.
type Tools struct {
	Kraft    string
	Archiver string
}

// Settings is the raw configuration supplied by the invoking build environment.
// It is resolved into a BuildConfig once the architecture and platform are known.
type Settings struct {
	OutDir     string
	TargetArch string
	KVM        bool
	Linuxu     bool
	Tools      Tools
	Format     DirectiveFormat
	StateFile  string
}

// DefaultSettings returns settings with every optional field populated.
func DefaultSettings() Settings {
	return Settings{
		Tools: Tools{
			Kraft:    DefaultKraft,
			Archiver: DefaultArchiver,
		},
		Format:    FormatCargo,
		StateFile: DefaultStateFile,
	}
}
