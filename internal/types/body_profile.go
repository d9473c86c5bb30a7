package types

import "math"

// GoldenRatio is the target visual leg ratio (leg length / height) that the
// proportion scorers reward movement toward.
const GoldenRatio = 0.618

// WeightedGoal pairs a styling goal with a participation weight in [0,1].
// User-selected goals carry 1.0; body-derived goals carry 0.5 or 0.25.
type WeightedGoal struct {
	Goal   StylingGoal `json:"goal"`
	Weight float64     `json:"weight"`
}

// BodyProfile is an immutable per-request snapshot of a person's body
// measurements and styling preferences. All measurements are in inches
// unless noted otherwise. Constructed once per scoring request via
// NewBodyProfile plus caller overrides; never mutated during scoring.
type BodyProfile struct {
	// Core measurements.
	Height    float64 `json:"height" validate:"gt=0"`
	Bust      float64 `json:"bust" validate:"gt=0"`
	Underbust float64 `json:"underbust" validate:"gt=0"`
	Waist     float64 `json:"waist" validate:"gt=0"`
	Hip       float64 `json:"hip" validate:"gt=0"`

	// Shoulder and neck.
	ShoulderWidth     float64 `json:"shoulder_width"`
	NeckLength        float64 `json:"neck_length"`
	NeckCircumference float64 `json:"neck_circumference"`

	// Torso proportions.
	TorsoLength     float64 `json:"torso_length"`      // shoulder to natural waist
	LegLengthVisual float64 `json:"leg_length_visual"` // natural waist to floor
	Inseam          float64 `json:"inseam"`

	// Arm landmarks. Positions are inches below the shoulder.
	ArmLength            float64 `json:"arm_length"`
	CUpperArmMax         float64 `json:"c_upper_arm_max"`
	CUpperArmMaxPosition float64 `json:"c_upper_arm_max_position"`
	CElbow               float64 `json:"c_elbow"`
	CForearmMax          float64 `json:"c_forearm_max"`
	CForearmMin          float64 `json:"c_forearm_min"`
	CForearmMinPosition  float64 `json:"c_forearm_min_position"`
	CWrist               float64 `json:"c_wrist"`

	// Leg landmarks. Heights are inches from the floor.
	HKnee     float64 `json:"h_knee"`
	HCalfMax  float64 `json:"h_calf_max"`
	HCalfMin  float64 `json:"h_calf_min"`
	HAnkle    float64 `json:"h_ankle"`
	CThighMax float64 `json:"c_thigh_max"`
	CCalfMax  float64 `json:"c_calf_max"`
	CCalfMin  float64 `json:"c_calf_min"`
	CAnkle    float64 `json:"c_ankle"`

	// Projection measurements, inches from the vertical plane.
	BustProjection  float64 `json:"bust_projection"`
	BellyProjection float64 `json:"belly_projection"`
	HipProjection   float64 `json:"hip_projection"` // lateral

	// Body composition and skin.
	BodyComposition   string        `json:"body_composition"` // lean | average | muscular | soft
	TissueFirmness    float64       `json:"tissue_firmness"`  // 0=very soft, 1=very firm
	SkinToneL         float64       `json:"skin_tone_l"`      // 0-100 lightness
	ContourSmoothness float64       `json:"contour_smoothness"`
	SkinUndertone     SkinUndertone `json:"skin_undertone"`
	SkinDarkness      float64       `json:"skin_darkness"` // 0=Fitzpatrick I, 1=VI

	// Zone concern levels, 0=no concern through 1=primary concern.
	BellyZone    float64 `json:"belly_zone"`
	HipZone      float64 `json:"hip_zone"`
	UpperArmZone float64 `json:"upper_arm_zone"`
	BustZone     float64 `json:"bust_zone"`

	IsAthletic bool `json:"is_athletic"`

	// Styling preferences.
	StylingGoals    []WeightedGoal `json:"styling_goals"`
	StylePhilosophy string         `json:"style_philosophy"` // balance | emphasis | hybrid

	// Context.
	Climate     Climate     `json:"climate"`
	WearContext WearContext `json:"wear_context"`
	CountryCode string      `json:"country_code,omitempty"`
	Age         int         `json:"age,omitempty"`
	Occasion    string      `json:"occasion,omitempty"`

	// Footwear planned with the garment, for the proportion shift.
	HeelHeightInches float64 `json:"heel_height_inches"`
	ShoeColorMatch   string  `json:"shoe_color_match,omitempty"` // nude | contrast | neutral

	// Per-zone goals. Nil means no stated preference.
	GoalBust      *string `json:"goal_bust,omitempty"`      // minimize | enhance | neutral
	GoalWaist     *string `json:"goal_waist,omitempty"`     // define | neutral
	GoalBelly     *string `json:"goal_belly,omitempty"`     // minimize | neutral
	GoalHip       *string `json:"goal_hip,omitempty"`       // narrower | neutral
	GoalArm       *string `json:"goal_arm,omitempty"`       // slimmer | neutral
	GoalNeck      *string `json:"goal_neck,omitempty"`      // longer | shorter | neutral
	GoalLegs      *string `json:"goal_legs,omitempty"`      // longer | showcase | neutral
	GoalShoulders *string `json:"goal_shoulders,omitempty"` // wider | narrower | neutral
}

// NewBodyProfile returns a profile populated with population-average
// measurements. Callers override the fields they actually know.
func NewBodyProfile() BodyProfile {
	return BodyProfile{
		Height:               66.0,
		Bust:                 36.0,
		Underbust:            32.0,
		Waist:                30.0,
		Hip:                  38.0,
		ShoulderWidth:        15.5,
		NeckLength:           3.5,
		NeckCircumference:    13.0,
		TorsoLength:          15.0,
		LegLengthVisual:      41.0,
		Inseam:               30.0,
		ArmLength:            23.0,
		CUpperArmMax:         12.0,
		CUpperArmMaxPosition: 3.0,
		CElbow:               10.0,
		CForearmMax:          9.5,
		CForearmMin:          8.5,
		CForearmMinPosition:  17.0,
		CWrist:               6.5,
		HKnee:                18.0,
		HCalfMax:             14.0,
		HCalfMin:             10.0,
		HAnkle:               4.0,
		CThighMax:            22.0,
		CCalfMax:             14.5,
		CCalfMin:             9.0,
		CAnkle:               8.5,
		BustProjection:       2.0,
		BellyProjection:      1.0,
		HipProjection:        1.5,
		BodyComposition:      "average",
		TissueFirmness:       0.5,
		SkinToneL:            50.0,
		ContourSmoothness:    0.5,
		SkinUndertone:        UndertoneNeutral,
		SkinDarkness:         0.5,
		StylePhilosophy:      "balance",
		Climate:              ClimateTemperate,
		WearContext:          ContextGeneral,
	}
}

// WHR returns the waist-hip ratio.
func (b *BodyProfile) WHR() float64 {
	if b.Hip <= 0 {
		return 0.80
	}
	return b.Waist / b.Hip
}

// BustDifferential is a proxy for cup size: bust minus underbust.
func (b *BodyProfile) BustDifferential() float64 {
	return b.Bust - b.Underbust
}

// ShoulderHipDiff compares shoulder width against the hip width implied by
// hip circumference.
func (b *BodyProfile) ShoulderHipDiff() float64 {
	return b.ShoulderWidth - b.Hip/math.Pi
}

// LegRatio returns visual leg length over height. Golden target: 0.618.
func (b *BodyProfile) LegRatio() float64 {
	if b.Height <= 0 {
		return 0.62
	}
	return b.LegLengthVisual / b.Height
}

// TorsoLegRatio returns torso length over visual leg length.
func (b *BodyProfile) TorsoLegRatio() float64 {
	if b.LegLengthVisual <= 0 {
		return 0.37
	}
	return b.TorsoLength / b.LegLengthVisual
}

// IsPetite reports whether the body is under 5'3".
func (b *BodyProfile) IsPetite() bool { return b.Height < 63.0 }

// IsTall reports whether the body is over 5'8".
func (b *BodyProfile) IsTall() bool { return b.Height > 68.0 }

// IsPlusSize reports whether bust or hip exceed plus-size thresholds.
func (b *BodyProfile) IsPlusSize() bool { return b.Bust > 42 || b.Hip > 44 }

// Shape classifies the body shape from circumference differentials and the
// shoulder-to-hip-width ratio.
func (b *BodyProfile) Shape() BodyShape {
	bwd := b.Bust - b.Waist
	hwd := b.Hip - b.Waist
	shr := 1.0
	if b.Hip > 0 {
		shr = b.ShoulderWidth / (b.Hip / math.Pi)
	}

	switch {
	case bwd >= 7 && hwd >= 7 && shr >= 0.85 && shr <= 1.15:
		return ShapeHourglass
	case hwd >= 7 && hwd > bwd+2 && shr < 1.05:
		return ShapePear
	case bwd < 5 && hwd < 5 && b.WHR() > 0.85:
		return ShapeApple
	case b.ShoulderHipDiff() > 3:
		return ShapeInvertedTriangle
	default:
		return ShapeRectangle
	}
}

// BodyTags returns the classification tags that apply to this body. A body
// can carry several at once (e.g. petite + pear).
func (b *BodyProfile) BodyTags() []string {
	var tags []string
	if b.Height < 63 {
		tags = append(tags, "petite")
	}
	if b.Height > 68 {
		tags = append(tags, "tall")
	}
	if b.Hip-b.Bust >= 3 && b.WHR() < 0.78 {
		tags = append(tags, "pear")
	}
	if b.WHR() > 0.85 {
		tags = append(tags, "apple")
	}
	if math.Abs(b.Bust-b.Hip) <= 2 && b.BustDifferential() >= 6 && b.WHR() <= 0.75 {
		tags = append(tags, "hourglass")
	}
	if math.Abs(b.Bust-b.Waist) <= 4 && math.Abs(b.Waist-b.Hip) <= 4 {
		tags = append(tags, "rectangle")
	}
	if b.ShoulderHipDiff() > 3 {
		tags = append(tags, "inverted_triangle")
	}
	if b.IsPlusSize() {
		tags = append(tags, "plus_size")
	}
	return tags
}

// TorsoScore rates torso proportion from -2 (very short) to +2 (very long),
// based on torso_length/height against the ~0.23 average; each 0.02 of
// ratio is one score point.
func (b *BodyProfile) TorsoScore() float64 {
	ratio := 0.23
	if b.Height > 0 {
		ratio = b.TorsoLength / b.Height
	}
	return (ratio - 0.23) / 0.02
}

// CalfProminence is the widest-to-narrowest calf circumference ratio.
func (b *BodyProfile) CalfProminence() float64 {
	if b.CCalfMin <= 0 {
		return 1.0
	}
	return b.CCalfMax / b.CCalfMin
}

// ArmProminenceCombined blends the upper-arm-to-wrist ratio with the
// upper-arm-to-forearm bulge factor.
func (b *BodyProfile) ArmProminenceCombined() float64 {
	if b.CWrist <= 0 || b.CForearmMin <= 0 {
		return 1.5
	}
	prominenceRatio := b.CUpperArmMax / b.CWrist
	bulgeFactor := b.CUpperArmMax / b.CForearmMin
	return (prominenceRatio + bulgeFactor) / 2
}

// GoalWeight returns the participation weight of the given goal, or 0 if
// the goal is not active on this profile.
func (b *BodyProfile) GoalWeight(g StylingGoal) float64 {
	for _, wg := range b.StylingGoals {
		if wg.Goal == g {
			return wg.Weight
		}
	}
	return 0
}

// HasGoal reports whether the goal is active with any positive weight.
func (b *BodyProfile) HasGoal(g StylingGoal) bool {
	return b.GoalWeight(g) > 0
}
