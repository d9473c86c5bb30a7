package types

import "math"

// GarmentProfile is the normalized description of a garment, merging fabric
// attributes with visual and construction properties. Built once from
// extracted attributes; read-only during scoring. Optional fields are
// pointers so that absence propagates as "not applicable" downstream rather
// than a silently wrong zero.
type GarmentProfile struct {
	// Fabric composition.
	PrimaryFiber    string             `json:"primary_fiber"` // cotton, polyester, silk, wool, etc.
	PrimaryFiberPct float64            `json:"primary_fiber_pct"`
	SecondaryFiber  *string            `json:"secondary_fiber,omitempty"`
	SecondaryPct    float64            `json:"secondary_fiber_pct"`
	ElastanePct     float64            `json:"elastane_pct"`
	FabricName      *string            `json:"fabric_name,omitempty"` // ponte, chiffon, satin, etc.
	Construction    FabricConstruction `json:"construction"`
	GSMEstimated    *float64           `json:"gsm_estimated,omitempty"` // grams per square meter
	Surface         SurfaceFinish      `json:"surface"`
	SurfaceFriction float64            `json:"surface_friction"`  // 0=slippery, 1=grippy
	Drape           *float64           `json:"drape,omitempty"`   // 1-10 scale

	// Silhouette.
	Category        GarmentCategory `json:"category"`
	Silhouette      Silhouette      `json:"silhouette"`
	ExpansionRate   float64         `json:"expansion_rate"` // body-fabric gap rate
	SilhouetteLabel string          `json:"silhouette_label"`

	// Neckline.
	Neckline      NecklineType `json:"neckline"`
	VDepthCm      float64      `json:"v_depth_cm"`
	NecklineDepth *float64     `json:"neckline_depth,omitempty"` // inches

	// Sleeves.
	SleeveType         SleeveType `json:"sleeve_type"`
	SleeveLengthInches *float64   `json:"sleeve_length_inches,omitempty"` // from shoulder
	SleeveEaseInches   float64    `json:"sleeve_ease_inches"`

	// Rise and waist.
	RiseCm             *float64 `json:"rise_cm,omitempty"`
	WaistbandWidthCm   float64  `json:"waistband_width_cm"`
	WaistbandStretch   float64  `json:"waistband_stretch_pct"`
	WaistPosition      string   `json:"waist_position"` // empire | high | natural | drop | no_waist
	HasWaistDefinition bool     `json:"has_waist_definition"`

	// Hemline.
	HemPosition         string   `json:"hem_position"` // mini | above_knee | knee | below_knee | midi | below_calf | ankle | floor
	GarmentLengthInches *float64 `json:"garment_length_inches,omitempty"`
	HemType             string   `json:"hem_type,omitempty"` // clean_hem | elastic | soft_edge | flutter | rolled

	// Coverage.
	CoversWaist bool   `json:"covers_waist"`
	CoversHips  bool   `json:"covers_hips"`
	Zone        string `json:"zone"` // torso | lower_body | full_body

	// Color.
	ColorLightness     float64 `json:"color_lightness"`  // 0=black, 1=white
	ColorSaturation    float64 `json:"color_saturation"` // 0=gray, 1=vivid
	ColorTemperature   string  `json:"color_temperature"`
	ColorName          string  `json:"color_name,omitempty"`
	IsMonochromeOutfit bool    `json:"is_monochrome_outfit"`

	// Pattern.
	HasPattern           bool    `json:"has_pattern"`
	PatternType          *string `json:"pattern_type,omitempty"`
	HasHorizontalStripes bool    `json:"has_horizontal_stripes"`
	HasVerticalStripes   bool    `json:"has_vertical_stripes"`
	StripeWidthCm        float64 `json:"stripe_width_cm"`
	StripeSpacingCm      float64 `json:"stripe_spacing_cm"`
	PatternScale         string  `json:"pattern_scale"` // none | small | medium | large
	PatternScaleInches   float64 `json:"pattern_scale_inches"`
	PatternContrast      float64 `json:"pattern_contrast"`

	// Belt.
	HasContrastingBelt bool    `json:"has_contrasting_belt"`
	HasTonalBelt       bool    `json:"has_tonal_belt"`
	BeltWidthCm        float64 `json:"belt_width_cm"`

	// Construction details.
	IsStructured       bool    `json:"is_structured"` // boning, lining, sculpting
	HasDarts           bool    `json:"has_darts"`
	HasLining          bool    `json:"has_lining"`
	IsFauxWrap         bool    `json:"is_faux_wrap"`
	GarmentEaseInches  float64 `json:"garment_ease_inches"`

	// Brand and product photo model.
	BrandTier          BrandTier `json:"brand_tier"`
	UsesDiverseModel   bool      `json:"uses_diverse_model"`
	ModelEstimatedSize int       `json:"model_estimated_size"` // US size of product photo model

	// Garment-type identification.
	GarmentLayer GarmentLayer `json:"garment_layer"`
	Title        *string      `json:"title,omitempty"` // product title for classification
	FitCategory  *string      `json:"fit_category,omitempty"` // fitted | semi_fitted | relaxed | loose | oversized

	// Top-specific.
	TopHemLength   *string         `json:"top_hem_length,omitempty"` // at_waist | just_below_waist | at_hip | below_hip | tunic_length | cropped
	TopHemBehavior *TopHemBehavior `json:"top_hem_behavior,omitempty"`

	// Bottom-specific.
	Rise            *string `json:"rise,omitempty"`      // low | mid | high | ultra_high
	LegShape        *string `json:"leg_shape,omitempty"` // skinny | slim | straight | bootcut | flare | wide_leg | palazzo | tapered | jogger
	LegOpeningWidth *string `json:"leg_opening_width,omitempty"`
	BottomLength    *string `json:"bottom_length,omitempty"` // ankle | full_length | cropped | capri | bermuda | short | micro

	// Jacket/outerwear-specific.
	JacketClosure     *string `json:"jacket_closure,omitempty"`     // single_breasted | double_breasted | zip | open_front | belted | toggle
	JacketLength      *string `json:"jacket_length,omitempty"`      // cropped | waist | hip | mid_thigh | knee | below_knee | full_length
	ShoulderStructure *string `json:"shoulder_structure,omitempty"` // natural | padded | structured | dropped | oversized

	// Skirt-specific.
	SkirtConstruction *string `json:"skirt_construction,omitempty"` // a_line | pencil | pleated | wrap | tiered | circle | straight | tulip | asymmetric | slit
}

// NewGarmentProfile returns a garment with mid-market defaults for the
// fields that always carry a value.
func NewGarmentProfile() GarmentProfile {
	gsm := 150.0
	drape := 5.0
	return GarmentProfile{
		PrimaryFiber:      "polyester",
		PrimaryFiberPct:   100.0,
		Construction:      ConstructionWoven,
		GSMEstimated:      &gsm,
		Surface:           SurfaceMatte,
		SurfaceFriction:   0.5,
		Drape:             &drape,
		Category:          CategoryDress,
		Silhouette:        SilhouetteSemiFitted,
		ExpansionRate:     0.05,
		SilhouetteLabel:   "fitted",
		Neckline:          NecklineCrew,
		SleeveType:        SleeveSetIn,
		SleeveEaseInches:  1.0,
		WaistbandWidthCm:  3.0,
		WaistbandStretch:  5.0,
		WaistPosition:     "natural",
		HemPosition:       "knee",
		HemType:           "clean_hem",
		CoversWaist:       true,
		CoversHips:        true,
		Zone:              "torso",
		ColorLightness:    0.5,
		ColorSaturation:   0.5,
		ColorTemperature:  "neutral",
		PatternScale:      "none",
		PatternContrast:   0.5,
		GarmentEaseInches: 3.0,
		BrandTier:         TierMidMarket,
		ModelEstimatedSize: 2,
		GarmentLayer:      LayerBase,
	}
}

// IsDark reports whether the garment color reads as dark.
func (g *GarmentProfile) IsDark() bool { return g.ColorLightness < 0.25 }

// SheenIndex maps the surface finish to a 0-1 sheen score.
func (g *GarmentProfile) SheenIndex() float64 {
	switch g.Surface {
	case SurfaceDeepMatte:
		return 0.00
	case SurfaceMatte:
		return 0.10
	case SurfaceSubtleSheen:
		return 0.25
	case SurfaceModerateSheen:
		return 0.50
	case SurfaceHighShine:
		return 0.75
	case SurfaceMaximumShine:
		return 1.00
	case SurfaceCrushed:
		return 0.35
	default:
		return 0.10
	}
}

// DrapeCoefficient converts the 1-10 drape scale to a percentage, or nil
// when drape is unknown.
func (g *GarmentProfile) DrapeCoefficient() *float64 {
	if g.Drape == nil {
		return nil
	}
	dc := *g.Drape * 10.0
	return &dc
}

// StretchMultiplier returns the construction-specific elastane stretch
// multiplier.
func (g *GarmentProfile) StretchMultiplier() float64 {
	switch g.Construction {
	case ConstructionWoven:
		return 1.6
	case ConstructionKnit:
		return 4.0
	case ConstructionKnitRib:
		return 5.5
	case ConstructionKnitDouble:
		return 3.5
	case ConstructionKnitJersey:
		return 4.0
	default:
		return 2.0
	}
}

// ClingRisk estimates cling risk from stretch, weight, and friction.
// High stretch plus low GSM plus low friction means high cling.
func (g *GarmentProfile) ClingRisk() float64 {
	stretch := g.ElastanePct * g.StretchMultiplier()
	gsm := 150.0
	if g.GSMEstimated != nil {
		gsm = *g.GSMEstimated
	}
	gsmFactor := math.Max(0, 1.0-gsm/300.0)
	frictionFactor := math.Max(0, 1.0-g.SurfaceFriction)
	return math.Min(1.0, (stretch/20.0+gsmFactor+frictionFactor)/3.0)
}
