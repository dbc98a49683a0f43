package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

//Data : config data
type Data struct {
	ServiceName           string        `mapstructure:"serviceName"  yaml:"serviceName,omitempty"`
	MarketDataService     string        `mapstructure:"marketDataServiceURL"  yaml:"marketDataServiceURL,omitempty"`
	MarketDataApiKey      string        `mapstructure:"marketDataApiKey"  yaml:"marketDataApiKey,omitempty"`
	CustomCurrencyService string        `mapstructure:"customCurrencyServiceURL"  yaml:"customCurrencyServiceURL,omitempty"`
	DBHost                string        `mapstructure:"dbHost"  yaml:"dbHost,omitempty"`
	DBUser                string        `mapstructure:"dbUser"  yaml:"dbUser,omitempty"`
	DBPassword            string        `mapstructure:"dbPassword"  yaml:"dbPassword,omitempty"`
	DBName                string        `mapstructure:"dbName"  yaml:"dbName,omitempty"`
	MaxIdleConns          int           `mapstructure:"maxIdleConns"  yaml:"maxIdleConns,omitempty"`
	MaxOpenConns          int           `mapstructure:"maxOpenConns"  yaml:"maxOpenConns,omitempty"`
	ConnMaxLifetime       int           `mapstructure:"connMaxLifetime"  yaml:"connMaxLifetime,omitempty"`
	PriceSyncInterval     time.Duration `mapstructure:"priceSyncInterval"  yaml:"priceSyncInterval,omitempty"`
	ExpireCacheDuration   time.Duration `mapstructure:"expireCacheDuration"  yaml:"expireCacheDuration,omitempty"`
	PurgeCacheInterval    time.Duration `mapstructure:"purgeCacheInterval"  yaml:"purgeCacheInterval,omitempty"`
	CustomCurrencyCron    string        `mapstructure:"customCurrencyCron"  yaml:"customCurrencyCron,omitempty"`
}

//Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	viper.SetEnvPrefix("mka") // Prefix all env variables with MKA (MarKet Adapter)
	viper.AutomaticEnv()
	viper.BindEnv("marketDataApiKey")
	viper.BindEnv("dbUser")
	viper.BindEnv("dbPassword")

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	viper.AddConfigPath(configDir)
	viper.WatchConfig()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
		} else {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				panic(fmt.Errorf("\n Configuration file not found >>%s ", err))
			} else {
				panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
			}
		}
		viper.Unmarshal(c)
		fmt.Println("Config file changed:", e.Name)
	})

	viper.Unmarshal(c)
	log.Println("App configuration loaded successfully!")
}
