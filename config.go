package tudat

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _tudatconfig{}
)

// _tudatconfig is a "hidden" struct, just use `tudatConfig`.
type _tudatconfig struct {
	VSOP87Dir string
	outputDir string
}

// tudatConfig returns the tudat configuration, loading the conf.toml pointed
// at by the TUDAT_CONFIG environment variable on first use.
func tudatConfig() _tudatconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("TUDAT_CONFIG")
	if confPath == "" {
		panic("environment variable `TUDAT_CONFIG` is missing or empty")
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}
	vsop87Dir := viper.GetString("VSOP87.directory")
	outputDir := viper.GetString("general.output_path")
	if outputDir == "" {
		outputDir = "."
	}
	config = _tudatconfig{VSOP87Dir: vsop87Dir, outputDir: outputDir}
	cfgLoaded = true
	return config
}
