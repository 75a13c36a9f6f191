package config

import (
	_ "embed"
)

//go:embed defaults/screwchick.yaml
var defaultScrewChickYAML []byte

// DefaultScrewChickConfig returns the default Screw Chick configuration.
func DefaultScrewChickConfig() ScrewChickConfig {
	return ScrewChickConfig{
		Grid: ScrewChickGrid{
			Width:  20,
			Height: 16,
		},
		Speed: ScrewChickSpeed{
			BaseGridSpeed:        2.0,
			Initial:              1.0,
			PickupIncrease:       0.2,
			DeliveryFailIncrease: 0.6,
			DeliveryDecay:        0.6,
		},
		Input: ScrewChickInput{
			QueueDepth: 2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "screwchick":
		return defaultScrewChickYAML
	default:
		return nil
	}
}
