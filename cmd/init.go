package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gnolang/refit/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var force bool

// initCmd: refit init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile, force); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			os.Exit(1)
		}
		fmt.Printf("Configuration file created: %s\n", cfgFile)
	},
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
}

func initConfigurationFile(configurationPath string, force bool) error {
	if configurationPath == "" {
		configurationPath = config.DefaultFileName
	}

	if !force {
		_, err := os.Stat(configurationPath)
		if err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", configurationPath)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	base := filepath.Dir(configurationPath)
	return config.Save(configurationPath, config.Default(base).File("refit", base))
}
