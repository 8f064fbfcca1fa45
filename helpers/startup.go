package helpers

import (
	"os"

	"github.com/sofya-ai/meet-launcher/pkg/config"
	"gopkg.in/yaml.v3"
)

// PrepareServer applies defaults and validation and makes the config
// available through config.GetConfig.
func PrepareServer(appCnf *config.AppConfig) error {
	_, err := config.New(appCnf)
	return err
}

func ReadYamlConfigFile(cnfFile string) (*config.AppConfig, error) {
	return readYaml(cnfFile)
}

func readYaml(filename string) (*config.AppConfig, error) {
	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	appCnf := new(config.AppConfig)
	err = yaml.Unmarshal(yamlFile, appCnf)
	if err != nil {
		return nil, err
	}

	// get current working dir
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// set the root path
	appCnf.RootWorkingDir = wd

	return appCnf, nil
}
