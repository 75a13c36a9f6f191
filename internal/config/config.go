// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ScrewChickConfig contains all tunables for the Screw Chick game.
type ScrewChickConfig struct {
	Grid  ScrewChickGrid  `yaml:"grid"`
	Speed ScrewChickSpeed `yaml:"speed"`
	Input ScrewChickInput `yaml:"input"`
}

// ScrewChickGrid defines the playfield size in tiles, border included.
type ScrewChickGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScrewChickSpeed defines movement speed and how events change it.
// All multipliers scale BaseGridSpeed.
type ScrewChickSpeed struct {
	BaseGridSpeed        float64 `yaml:"base_grid_speed"` // Grid steps per second at multiplier 1.0
	Initial              float64 `yaml:"initial"`
	PickupIncrease       float64 `yaml:"pickup_increase"`
	DeliveryFailIncrease float64 `yaml:"delivery_fail_increase"`
	DeliveryDecay        float64 `yaml:"delivery_decay"` // Share of the gain kept after a delivery
}

// ScrewChickInput defines input buffering.
type ScrewChickInput struct {
	QueueDepth int `yaml:"queue_depth"`
}

// Validate reports the first setting that would make the game unplayable.
func (c ScrewChickConfig) Validate() error {
	var errs []error
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		errs = append(errs, fmt.Errorf("grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Speed.BaseGridSpeed <= 0 {
		errs = append(errs, fmt.Errorf("speed.base_grid_speed must be positive, got %v", c.Speed.BaseGridSpeed))
	}
	if c.Speed.Initial <= 0 {
		errs = append(errs, fmt.Errorf("speed.initial must be positive, got %v", c.Speed.Initial))
	}
	if c.Speed.PickupIncrease < 0 || c.Speed.DeliveryFailIncrease < 0 {
		errs = append(errs, errors.New("speed increases must not be negative"))
	}
	if c.Speed.DeliveryDecay < 0 || c.Speed.DeliveryDecay > 1 {
		errs = append(errs, fmt.Errorf("speed.delivery_decay must be within [0, 1], got %v", c.Speed.DeliveryDecay))
	}
	if c.Input.QueueDepth < 1 {
		errs = append(errs, fmt.Errorf("input.queue_depth must be at least 1, got %d", c.Input.QueueDepth))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid screwchick config: %w", errors.Join(errs...))
	}
	return nil
}
