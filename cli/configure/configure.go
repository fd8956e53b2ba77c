package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/himself65/create-addon/cli/config"
	"github.com/himself65/create-addon/cli/util"
	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigName is a name of the configuration file searched from the working
	// directory up to the root.
	ConfigName = "create-addon.yaml"
	// ConfigPathEnvName is an environment variable that contains a path to the
	// configuration file.
	ConfigPathEnvName = "CREATE_ADDON_CFG"
	// TemplatesDirEnvName is an environment variable overriding the templates directory.
	TemplatesDirEnvName = "CREATE_ADDON_TEMPLATES_DIR"
	// TemplatesDirName is a default templates directory name.
	TemplatesDirName = "templates"
)

const (
	defaultLogMaxSize    = 10
	defaultLogMaxAge     = 7
	defaultLogMaxBackups = 3
)

// executableDir is replaced in tests.
var executableDir = util.ExecutableDir

// GetDefaultCliOpts returns CliOpts filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Log: &config.LogOpts{
			MaxSize:    defaultLogMaxSize,
			MaxAge:     defaultLogMaxAge,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}

// adjustPathWithConfigLocation adjust provided filePath with configDir.
// Absolute filePath is returned as is. Relative filePath is calculated relative to configDir.
// Empty filePath stays empty.
func adjustPathWithConfigLocation(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}
	if filepath.IsAbs(filePath) {
		return filePath, nil
	}
	return filepath.Abs(filepath.Join(configDir, filePath))
}

// defaultTemplatesDir returns templates directory shipped along with the executable:
// <exe dir>/../templates for installed layouts, <exe dir>/templates otherwise.
func defaultTemplatesDir() (string, error) {
	exeDir, err := executableDir()
	if err != nil {
		return "", fmt.Errorf("failed to detect executable location: %s", err)
	}

	candidates := []string{
		filepath.Join(filepath.Dir(exeDir), TemplatesDirName),
		filepath.Join(exeDir, TemplatesDirName),
	}
	for _, candidate := range candidates {
		if util.IsDir(candidate) {
			return candidate, nil
		}
	}
	return candidates[0], nil
}

// updateCliOpts resolves all paths in config relative to specified location, and
// sets uninitialized values to defaults.
func updateCliOpts(cliOpts *config.CliOpts, configDir string) error {
	var err error

	if envDir := os.Getenv(TemplatesDirEnvName); envDir != "" {
		if cliOpts.TemplatesDir, err = filepath.Abs(envDir); err != nil {
			return err
		}
	} else if cliOpts.TemplatesDir != "" {
		if cliOpts.TemplatesDir, err = adjustPathWithConfigLocation(cliOpts.TemplatesDir,
			configDir); err != nil {
			return err
		}
	} else if cliOpts.TemplatesDir, err = defaultTemplatesDir(); err != nil {
		return err
	}

	if cliOpts.Log == nil {
		cliOpts.Log = GetDefaultCliOpts().Log
	}
	if cliOpts.Log.File, err = adjustPathWithConfigLocation(cliOpts.Log.File,
		configDir); err != nil {
		return err
	}

	return nil
}

func decodeConfig(input map[string]any, cfg *config.CliOpts) error {
	decoderConfig := mapstructure.DecoderConfig{
		Result:      cfg,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(&decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// GetCliOpts returns create-addon options from the config file located at
// configurePath. If configurePath is empty, CREATE_ADDON_CFG is checked and then
// create-addon.yaml is searched from the working directory up to the root.
// Missing configuration is not an error: defaults are used.
func GetCliOpts(configurePath string) (*config.CliOpts, string, error) {
	var err error
	cfg := GetDefaultCliOpts()

	if configurePath == "" {
		configurePath = os.Getenv(ConfigPathEnvName)
	}

	var configPath string
	if configurePath != "" {
		if configPath, err = util.GetYamlFileName(configurePath, true); err != nil {
			return nil, "", fmt.Errorf("failed to get access to configuration file %q: %s",
				configurePath, err)
		}
	} else if configPath, err = getConfigPath(ConfigName); err != nil {
		return nil, "", err
	}

	configDir := ""
	if configPath != "" {
		if configPath, err = filepath.Abs(configPath); err != nil {
			return nil, "", fmt.Errorf("cannot determine config file path: %s", err)
		}
		log.Debugf("Using configuration file %s", configPath)

		rawConfigOpts, err := util.ParseYAML(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse create-addon configuration: %s", err)
		}
		if err := decodeConfig(rawConfigOpts, cfg); err != nil {
			return nil, "", fmt.Errorf("failed to parse create-addon configuration: %s", err)
		}
		configDir = filepath.Dir(configPath)
	} else if configDir, err = os.Getwd(); err != nil {
		return nil, "", err
	}

	if err = updateCliOpts(cfg, configDir); err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// getConfigPath looks for the path to the create-addon.yaml configuration file,
// looking through all directories from the current one to the root.
func getConfigPath(configName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to detect current directory: %s", err)
	}

	for {
		configPath, err := util.GetYamlFileName(filepath.Join(curDir, configName), true)
		if err == nil {
			return configPath, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}

		parentDir := filepath.Dir(curDir)
		if parentDir == curDir {
			break
		}
		curDir = parentDir
	}

	return "", nil
}
