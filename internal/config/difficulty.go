package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset. Empty means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BaseSpeedFactorForPreset returns how a preset scales the base grid speed.
func BaseSpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyScrewChickPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured base speed and turns off every
// speed change, so pickups and deliveries only affect the score.
func ApplyScrewChickPreset(cfg *ScrewChickConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Speed.PickupIncrease = 0
		cfg.Speed.DeliveryFailIncrease = 0
		return
	}
	cfg.Speed.BaseGridSpeed *= BaseSpeedFactorForPreset(preset)
}
