// Config loading for the sortie CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-aero/sortie/pkg/mission"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyQuadCallsign      = "quad_callsign"
	cfgKeyFixedWingCallsign = "fixed_wing_callsign"
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. Defaults reproduce the stock demonstration callsigns; a missing
// config directory or config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyQuadCallsign, mission.DefaultQuadCallsign)
	v.SetDefault(cfgKeyFixedWingCallsign, mission.DefaultFixedWingCallsign)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// loadPlan builds a mission plan from config. The returned plan has no
// output writer set; the caller supplies one.
func loadPlan(configDir string) (mission.Plan, error) {
	v, err := loadConfig(configDir)
	if err != nil {
		return mission.Plan{}, err
	}
	return mission.Plan{
		QuadCallsign:      v.GetString(cfgKeyQuadCallsign),
		FixedWingCallsign: v.GetString(cfgKeyFixedWingCallsign),
	}, nil
}
