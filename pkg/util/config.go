package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lintang-b-s/cvrp/pkg"
	"github.com/spf13/viper"
)

// DefaultDataDir is the build-time fallback for the instance directory,
// set with -ldflags "-X github.com/lintang-b-s/cvrp/pkg/util.DefaultDataDir=/path".
var DefaultDataDir = ""

const (
	dataDirKey        = "CVRP_DATA_DIR"
	defaultDataDirKey = "DEFAULT_DATA_DIR"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// config file is optional, env vars and defaults still apply
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// InstanceDir returns the directory .vrp files are read from: CVRP_DATA_DIR from the
// environment or config, then the build-time default. Empty means the working directory.
func InstanceDir() string {
	_ = viper.BindEnv(dataDirKey)
	viper.SetDefault(defaultDataDirKey, DefaultDataDir)

	if dir := viper.GetString(dataDirKey); dir != "" {
		return dir
	}
	return viper.GetString(defaultDataDirKey)
}

// BuildInstancePath returns {dir}/{name}.vrp, adding a separator only when dir needs one.
func BuildInstancePath(dir, name string) string {
	var sb strings.Builder
	sb.WriteString(dir)
	if dir != "" && !strings.HasSuffix(dir, "/") && !strings.HasSuffix(dir, "\\") {
		sb.WriteByte('/')
	}
	sb.WriteString(name)
	sb.WriteString(pkg.INSTANCE_FILE_EXT)
	return sb.String()
}
