package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/ticket-office/internal"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; with no path the default locations are
// probed and a missing file yields the zero configuration.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "config.yaml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if path == "" && os.IsNotExist(err) {
			Config = AppConfig{}
			return nil
		}
		return err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if err := checkLimits(cfg.Limits); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func checkLimits(limits LimitsConfig) error {
	maxTrip := internal.DayEndMinutes - internal.DayStartMinutes + 1
	if limits.MaxTripMinutes != 0 && limits.MaxTripMinutes != maxTrip {
		return fmt.Errorf("limits.maxTripMinutes must be %d, got %d", maxTrip, limits.MaxTripMinutes)
	}
	if limits.DayStart != "" {
		m, err := internal.ClockToMinutes(limits.DayStart)
		if err != nil || m != internal.DayStartMinutes {
			return fmt.Errorf("limits.dayStart must be %s", internal.MinutesToClock(internal.DayStartMinutes))
		}
	}
	if limits.DayEnd != "" {
		m, err := internal.ClockToMinutes(limits.DayEnd)
		if err != nil || m != internal.DayEndMinutes {
			return fmt.Errorf("limits.dayEnd must be %s", internal.MinutesToClock(internal.DayEndMinutes))
		}
	}
	return nil
}
