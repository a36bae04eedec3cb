package config

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	defaults = map[string]interface{}{
		"verbose":       false,
		"cache.backend": "memory",
		"cache.ttl":     "300s",
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("docloader")
	viper.AddConfigPath("/etc/docloader/")
	viper.AddConfigPath("$HOME/.docloader")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("DOCLOADER")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logrus.New().Warnf("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	c := &Config{}

	c.cache, err = buildCacheConfig()
	if err != nil {
		return nil, errors.Wrap(err, "cache config")
	}

	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	cache *CacheConfig
}

func (c *Config) Cache() *CacheConfig {
	return c.cache
}

func (c *Config) ContextsManifest() string {
	return viper.GetString("contexts.manifest")
}
