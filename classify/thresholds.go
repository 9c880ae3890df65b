// SPDX-License-Identifier: EPL-2.0

package classify

import "fmt"

// Thresholds tune the classifier. Speeds are in m/s, angular speeds in
// rad/s, masses in kg.
type Thresholds struct {
	// Below RestingSpeed a contact with a stable area is resting or rolling.
	RestingSpeed float64 `json:"resting_speed"`
	// Normal speed above ImpactSpeed is an impact.
	ImpactSpeed float64 `json:"impact_speed"`
	// Tangential speed above ScrapeSpeed, with normal speed below
	// ScrapeMaxNormalSpeed, is a scrape.
	ScrapeSpeed          float64 `json:"scrape_speed"`
	ScrapeMaxNormalSpeed float64 `json:"scrape_max_normal_speed"`
	// A sliding body spinning faster than RollAngularSpeed rolls.
	RollAngularSpeed       float64 `json:"roll_angular_speed"`
	RollMinTangentialSpeed float64 `json:"roll_min_tangential_speed"`
	// Impact intensity is scaled by ReferenceMass/(ReferenceMass+lighter mass).
	ReferenceMass float64 `json:"reference_mass"`
	// Frames a new kind must be seen in a row before it is reported.
	MinDwellFrames int `json:"min_dwell_frames"`
	// Relative area shrink still counted as a stable contact.
	AreaEpsilon float64 `json:"area_epsilon"`
	// Area growing by this factor between two frames is an impact.
	ImpactAreaRatio float64 `json:"impact_area_ratio"`
	// Slower contacts are ignored.
	MinCollisionSpeed float64 `json:"min_collision_speed"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RestingSpeed:           0.05,
		ImpactSpeed:            0.25,
		ScrapeSpeed:            0.05,
		ScrapeMaxNormalSpeed:   0.2,
		RollAngularSpeed:       0.5,
		RollMinTangentialSpeed: 1e-3,
		ReferenceMass:          1,
		MinDwellFrames:         2,
		AreaEpsilon:            0.05,
		ImpactAreaRatio:        5,
		MinCollisionSpeed:      1e-5,
	}
}

func (th Thresholds) Validate() error {
	switch {
	case th.RestingSpeed < 0, th.ImpactSpeed <= 0, th.ScrapeSpeed < 0,
		th.ScrapeMaxNormalSpeed < 0, th.RollAngularSpeed < 0,
		th.RollMinTangentialSpeed < 0, th.MinCollisionSpeed < 0:
		return fmt.Errorf("%w: speed thresholds must not be negative and impact speed must be positive", ErrInvalidThresholds)
	case th.ReferenceMass <= 0:
		return fmt.Errorf("%w: reference mass %v", ErrInvalidThresholds, th.ReferenceMass)
	case th.MinDwellFrames < 1:
		return fmt.Errorf("%w: min dwell frames %d", ErrInvalidThresholds, th.MinDwellFrames)
	case th.AreaEpsilon < 0 || th.AreaEpsilon >= 1:
		return fmt.Errorf("%w: area epsilon %v", ErrInvalidThresholds, th.AreaEpsilon)
	case th.ImpactAreaRatio <= 1:
		return fmt.Errorf("%w: impact area ratio %v", ErrInvalidThresholds, th.ImpactAreaRatio)
	}
	return nil
}
