package tasks

import (
	Config "market-adapter/config"
	"market-adapter/services"
	"market-adapter/utility/logger"

	"github.com/robfig/cron/v3"
)

const defaultCustomCurrencyCron = "@every 1h"

// RefreshCustomCurrencies pulls the latest custom currency records and drops
// the stale cached conversion units.
func RefreshCustomCurrencies(service *services.CustomCurrencyService) {
	logger.Info("Custom currency refresh process begins")
	if err := service.RefreshCustomCurrencies(); err != nil {
		logger.Error("Custom currency refresh failed : %s", err)
		return
	}
	logger.Info("Custom currency refresh process ends successfully")
}

// ExecuteCustomCurrencyCronJob schedules the periodic refresh and returns the
// runner so the caller can stop it on shutdown.
func ExecuteCustomCurrencyCronJob(config Config.Data, service *services.CustomCurrencyService) *cron.Cron {
	spec := config.CustomCurrencyCron
	if spec == "" {
		spec = defaultCustomCurrencyCron
	}
	c := cron.New()
	c.AddFunc(spec, func() { RefreshCustomCurrencies(service) })
	c.Start()
	return c
}
