package config

// CliOpts stores information about create-addon configuration.
// Filled in when parsing the create-addon.yaml configuration file.
//
// create-addon.yaml file format:
//
//	templates_dir: path
//	log:
//	  file: path
//	  maxsize: num (MB)
//	  maxage: num (Days)
//	  maxbackups: num
type CliOpts struct {
	// TemplatesDir is a directory containing a subdirectory per template id.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir"`
	// Log contains log file options.
	Log *LogOpts `mapstructure:"log" yaml:"log"`
}

// LogOpts is used to store log file options.
type LogOpts struct {
	// File is a path to the log file. Logging to file is disabled if empty.
	File string `mapstructure:"file" yaml:"file"`
	// MaxSize is a maximum size in MB of the log file before
	// it gets rotated.
	MaxSize int `mapstructure:"maxsize" yaml:"maxsize"`
	// MaxAge is the maximum number of days to retain old log files
	// based on the timestamp encoded in their filename.
	MaxAge int `mapstructure:"maxage" yaml:"maxage"`
	// MaxBackups is the maximum number of old log files to retain.
	MaxBackups int `mapstructure:"maxbackups" yaml:"maxbackups"`
}
