// Package types provides type definitions for structured data used throughout the fit-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// BodyShape classifies the overall silhouette of a body from its measurements.
type BodyShape string

// Body shape classifications.
const (
	ShapePear             BodyShape = "pear"
	ShapeApple            BodyShape = "apple"
	ShapeHourglass        BodyShape = "hourglass"
	ShapeRectangle        BodyShape = "rectangle"
	ShapeInvertedTriangle BodyShape = "inverted_triangle"
)

// StylingGoal is a user- or body-derived styling objective.
type StylingGoal string

// Styling goals. The first block is user-selectable; the second block is
// used internally by scorer participation maps.
const (
	GoalLookTaller       StylingGoal = "look_taller"
	GoalHighlightWaist   StylingGoal = "highlight_waist"
	GoalHideMidsection   StylingGoal = "hide_midsection"
	GoalSlimHips         StylingGoal = "slim_hips"
	GoalLookProportional StylingGoal = "look_proportional"
	GoalMinimizeArms     StylingGoal = "minimize_arms"

	GoalSlimming    StylingGoal = "slimming"
	GoalConcealment StylingGoal = "concealment"
	GoalEmphasis    StylingGoal = "emphasis"
	GoalBalance     StylingGoal = "balance"
)

// SkinUndertone is the warm/cool cast of the skin.
type SkinUndertone string

// Skin undertones.
const (
	UndertoneWarm    SkinUndertone = "warm"
	UndertoneCool    SkinUndertone = "cool"
	UndertoneNeutral SkinUndertone = "neutral"
)

// FabricConstruction is how the fabric is constructed.
type FabricConstruction string

// Fabric constructions.
const (
	ConstructionWoven      FabricConstruction = "woven"
	ConstructionKnit       FabricConstruction = "knit"
	ConstructionKnitRib    FabricConstruction = "knit_rib"
	ConstructionKnitDouble FabricConstruction = "knit_double" // ponte-type
	ConstructionKnitJersey FabricConstruction = "knit_jersey"
)

// SurfaceFinish is the light-reflecting quality of the fabric surface.
type SurfaceFinish string

// Surface finishes, from deep matte to mirror shine.
const (
	SurfaceDeepMatte     SurfaceFinish = "deep_matte"     // wool flannel, brushed cotton
	SurfaceMatte         SurfaceFinish = "matte"          // cotton poplin, standard
	SurfaceSubtleSheen   SurfaceFinish = "subtle_sheen"   // poly blend, sateen, modal
	SurfaceModerateSheen SurfaceFinish = "moderate_sheen" // satin, charmeuse
	SurfaceHighShine     SurfaceFinish = "high_shine"     // patent, wet-look
	SurfaceMaximumShine  SurfaceFinish = "maximum_shine"  // sequins, mirror metallic
	SurfaceCrushed       SurfaceFinish = "crushed"        // crushed velvet/satin
)

// Silhouette is the overall garment shape.
type Silhouette string

// Silhouettes.
const (
	SilhouetteFitted        Silhouette = "fitted" // bodycon, sheath
	SilhouetteSemiFitted    Silhouette = "semi_fitted"
	SilhouetteALine         Silhouette = "a_line"
	SilhouetteEmpire        Silhouette = "empire"
	SilhouetteWrap          Silhouette = "wrap"
	SilhouetteShift         Silhouette = "shift" // straight, no waist
	SilhouettePeplum        Silhouette = "peplum"
	SilhouetteFitAndFlare   Silhouette = "fit_and_flare"
	SilhouetteOversized     Silhouette = "oversized"
	SilhouetteArchitectural Silhouette = "architectural"
)

// SleeveType identifies the sleeve construction.
type SleeveType string

// Sleeve types.
const (
	SleeveSleeveless   SleeveType = "sleeveless"
	SleeveCap          SleeveType = "cap"
	SleeveShort        SleeveType = "short"
	SleeveThreeQuarter SleeveType = "three_quarter"
	SleeveLong         SleeveType = "long"
	SleeveRaglan       SleeveType = "raglan"
	SleeveDolman       SleeveType = "dolman"
	SleevePuff         SleeveType = "puff"
	SleeveFlutter      SleeveType = "flutter"
	SleeveBell         SleeveType = "bell"
	SleeveSetIn        SleeveType = "set_in"
)

// NecklineType identifies the neckline shape.
type NecklineType string

// Neckline types.
const (
	NecklineVNeck       NecklineType = "v_neck"
	NecklineDeepV       NecklineType = "deep_v"
	NecklineScoop       NecklineType = "scoop"
	NecklineCrew        NecklineType = "crew"
	NecklineBoat        NecklineType = "boat"
	NecklineSquare      NecklineType = "square"
	NecklineOffShoulder NecklineType = "off_shoulder"
	NecklineHalter      NecklineType = "halter"
	NecklineCowl        NecklineType = "cowl"
	NecklineTurtleneck  NecklineType = "turtleneck"
	NecklineWrap        NecklineType = "wrap"
)

// GarmentCategory is the primary garment classification. It determines which
// body zones get scored and which scorers run.
type GarmentCategory string

// Garment categories.
const (
	CategoryDress        GarmentCategory = "dress"
	CategoryTop          GarmentCategory = "top"
	CategoryBottomPants  GarmentCategory = "bottom_pants"
	CategoryBottomShorts GarmentCategory = "bottom_shorts"
	CategorySkirt        GarmentCategory = "skirt"
	CategoryJumpsuit     GarmentCategory = "jumpsuit"
	CategoryRomper       GarmentCategory = "romper"
	CategoryJacket       GarmentCategory = "jacket"
	CategoryCoat         GarmentCategory = "coat"
	CategorySweatshirt   GarmentCategory = "sweatshirt"
	CategoryCardigan     GarmentCategory = "cardigan"
	CategoryVest         GarmentCategory = "vest"
	CategoryBodysuit     GarmentCategory = "bodysuit"
	CategoryLoungewear   GarmentCategory = "loungewear"
	CategoryActivewear   GarmentCategory = "activewear"
	CategorySaree        GarmentCategory = "saree"
	CategorySalwarKameez GarmentCategory = "salwar_kameez"
	CategoryLehenga      GarmentCategory = "lehenga"
)

// GarmentLayer is which layer of dressing the garment occupies.
type GarmentLayer string

// Garment layers.
const (
	LayerBase  GarmentLayer = "base"
	LayerMid   GarmentLayer = "mid"
	LayerOuter GarmentLayer = "outer"
)

// TopHemBehavior is how a top's hemline interacts with the body.
type TopHemBehavior string

// Top hem behaviors.
const (
	HemTucked          TopHemBehavior = "tucked"
	HemHalfTucked      TopHemBehavior = "half_tucked"
	HemUntuckedAtHip   TopHemBehavior = "untucked_at_hip"
	HemUntuckedBelowHip TopHemBehavior = "untucked_below_hip"
	HemCropped         TopHemBehavior = "cropped"
	HemBodysuit        TopHemBehavior = "bodysuit"
)

// BrandTier affects how honest product photos tend to be.
type BrandTier string

// Brand tiers.
const (
	TierLuxury      BrandTier = "luxury"
	TierPremium     BrandTier = "premium"
	TierMidMarket   BrandTier = "mid_market"
	TierMassMarket  BrandTier = "mass_market"
	TierFastFashion BrandTier = "fast_fashion"
)

// WearContext is the situational setting the garment will be worn in.
type WearContext string

// Wear contexts.
const (
	ContextOfficeSeated   WearContext = "office_seated"
	ContextCasualActive   WearContext = "casual_active"
	ContextFormalStanding WearContext = "formal_standing"
	ContextGeneral        WearContext = "general"
)

// Climate is the wearer's climate band, used for fabric-weight checks.
type Climate string

// Climates.
const (
	ClimateHotHumid  Climate = "hot_humid"
	ClimateHotDry    Climate = "hot_dry"
	ClimateTemperate Climate = "temperate"
	ClimateCold      Climate = "cold"
)

// HemZone labels where a hemline lands relative to the leg danger zones.
// Ordered outermost to innermost along the leg.
type HemZone string

// Hem zones.
const (
	ZoneAboveKnee     HemZone = "above_knee"
	ZoneAboveKneeNear HemZone = "above_knee_near"
	ZoneKneeDanger    HemZone = "knee_danger"
	ZoneSafe          HemZone = "safe_zone"
	ZoneCollapsed     HemZone = "collapsed_zone"
	ZoneCalfDanger    HemZone = "calf_danger"
	ZoneBelowCalf     HemZone = "below_calf"
	ZoneAnkle         HemZone = "ankle"
	ZoneFloor         HemZone = "floor"
)

// Verdict is the pass/caution/fail outcome for a single styling goal.
type Verdict string

// Goal verdicts.
const (
	VerdictPass    Verdict = "pass"
	VerdictCaution Verdict = "caution"
	VerdictFail    Verdict = "fail"
)
