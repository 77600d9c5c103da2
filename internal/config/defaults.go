package config

const (
	defaultProjectsDir      = "~/.local/share/vidpack/projects"
	defaultLogDir           = "~/.local/share/vidpack/logs"
	defaultArtifactWidth    = 1280
	defaultArtifactHeight   = 720
	defaultTemplate         = "classic"
	defaultXMLLintBin       = "xmllint"
	defaultValidatorTimeout = 10
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectsDir: defaultProjectsDir,
			LogDir:      defaultLogDir,
		},
		Artifact: Artifact{
			Width:           defaultArtifactWidth,
			Height:          defaultArtifactHeight,
			DefaultTemplate: defaultTemplate,
		},
		Validator: Validator{
			XMLLintBin:     defaultXMLLintBin,
			TimeoutSeconds: defaultValidatorTimeout,
			RepairEnabled:  true,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
