package rules

import "github.com/kridha/fit-engine/internal/types"

// FabricData is the reference physical profile of a named fabric.
type FabricData struct {
	BaseGSM        float64
	Fiber          string
	Construction   types.FabricConstruction
	Surface        types.SurfaceFinish
	Drape          float64 // 1-10 scale
	TypicalStretch float64 // percent
}

// FabricLookup is the named-fabric reference table. Used to fill in
// typical stretch when elastane content is unknown and to seed garment
// profiles from a fabric name alone.
var FabricLookup = map[string]FabricData{
	"cotton_poplin":       {120, "cotton", types.ConstructionWoven, types.SurfaceMatte, 4, 0},
	"cotton_jersey":       {180, "cotton", types.ConstructionKnitJersey, types.SurfaceMatte, 6, 15},
	"silk_charmeuse":      {90, "silk", types.ConstructionWoven, types.SurfaceModerateSheen, 9, 0},
	"silk_chiffon":        {40, "silk", types.ConstructionWoven, types.SurfaceSubtleSheen, 10, 0},
	"wool_flannel":        {280, "wool", types.ConstructionWoven, types.SurfaceDeepMatte, 3, 0},
	"wool_crepe":          {200, "wool", types.ConstructionWoven, types.SurfaceMatte, 6, 2},
	"ponte":               {300, "polyester", types.ConstructionKnitDouble, types.SurfaceSubtleSheen, 4, 20},
	"denim":               {350, "cotton", types.ConstructionWoven, types.SurfaceMatte, 2, 0},
	"stretch_denim":       {320, "cotton", types.ConstructionWoven, types.SurfaceMatte, 3, 8},
	"satin":               {130, "polyester", types.ConstructionWoven, types.SurfaceModerateSheen, 8, 0},
	"linen":               {180, "linen", types.ConstructionWoven, types.SurfaceMatte, 3, 0},
	"rayon_challis":       {110, "rayon", types.ConstructionWoven, types.SurfaceSubtleSheen, 8, 0},
	"polyester_crepe":     {150, "polyester", types.ConstructionWoven, types.SurfaceSubtleSheen, 7, 0},
	"modal_jersey":        {170, "modal", types.ConstructionKnitJersey, types.SurfaceSubtleSheen, 7, 20},
	"tencel_twill":        {200, "tencel", types.ConstructionWoven, types.SurfaceSubtleSheen, 6, 0},
	"velvet":              {280, "polyester", types.ConstructionWoven, types.SurfaceDeepMatte, 5, 0},
	"crushed_velvet":      {250, "polyester", types.ConstructionWoven, types.SurfaceCrushed, 6, 5},
	"neoprene":            {350, "polyester", types.ConstructionKnitDouble, types.SurfaceMatte, 2, 15},
	"organza":             {50, "polyester", types.ConstructionWoven, types.SurfaceSubtleSheen, 2, 0},
	"tulle":               {30, "nylon", types.ConstructionKnit, types.SurfaceSubtleSheen, 3, 5},
	"rib_knit":            {220, "cotton", types.ConstructionKnitRib, types.SurfaceMatte, 5, 30},
	"french_terry":        {280, "cotton", types.ConstructionKnit, types.SurfaceMatte, 4, 10},
	"scuba":               {320, "polyester", types.ConstructionKnitDouble, types.SurfaceMatte, 3, 12},
	"leather":             {500, "leather", types.ConstructionWoven, types.SurfaceModerateSheen, 2, 0},
	"faux_leather":        {350, "polyester", types.ConstructionWoven, types.SurfaceHighShine, 3, 5},
	"viscose_twill":       {160, "viscose", types.ConstructionWoven, types.SurfaceSubtleSheen, 7, 0},
	"cotton_sateen":       {150, "cotton", types.ConstructionWoven, types.SurfaceSubtleSheen, 5, 0},
	"silk_crepe_de_chine": {80, "silk", types.ConstructionWoven, types.SurfaceSubtleSheen, 8, 0},
	"wool_gabardine":      {260, "wool", types.ConstructionWoven, types.SurfaceMatte, 3, 0},
	"chambray":            {140, "cotton", types.ConstructionWoven, types.SurfaceMatte, 5, 0},
	"tweed":               {320, "wool", types.ConstructionWoven, types.SurfaceDeepMatte, 2, 0},
	"sequin_mesh":         {200, "polyester", types.ConstructionKnit, types.SurfaceMaximumShine, 5, 10},
	"spandex_blend":       {200, "nylon", types.ConstructionKnit, types.SurfaceSubtleSheen, 6, 40},
	"poplin_stretch":      {130, "cotton", types.ConstructionWoven, types.SurfaceMatte, 4, 5},
	"chiffon_poly":        {50, "polyester", types.ConstructionWoven, types.SurfaceSubtleSheen, 9, 0},
	"double_crepe":        {220, "polyester", types.ConstructionWoven, types.SurfaceMatte, 5, 2},
	"power_mesh":          {100, "nylon", types.ConstructionKnit, types.SurfaceSubtleSheen, 7, 50},
	"bengaline":           {250, "polyester", types.ConstructionWoven, types.SurfaceSubtleSheen, 3, 8},
	"jacquard":            {250, "polyester", types.ConstructionWoven, types.SurfaceModerateSheen, 4, 0},
	"brocade":             {300, "polyester", types.ConstructionWoven, types.SurfaceModerateSheen, 3, 0},
	"interlock_knit":      {200, "cotton", types.ConstructionKnitDouble, types.SurfaceMatte, 5, 18},
	"bamboo_jersey":       {160, "viscose", types.ConstructionKnitJersey, types.SurfaceSubtleSheen, 7, 15},
	"wool_jersey":         {220, "wool", types.ConstructionKnitJersey, types.SurfaceMatte, 5, 12},
	"terry_cloth":         {400, "cotton", types.ConstructionWoven, types.SurfaceDeepMatte, 3, 0},
	"crepe_back_satin":    {150, "polyester", types.ConstructionWoven, types.SurfaceModerateSheen, 7, 0},
	"lyocell_twill":       {190, "tencel", types.ConstructionWoven, types.SurfaceSubtleSheen, 6, 0},
	"cupro":               {100, "viscose", types.ConstructionWoven, types.SurfaceSubtleSheen, 9, 0},
	"taffeta":             {100, "polyester", types.ConstructionWoven, types.SurfaceModerateSheen, 2, 0},
	"mesh":                {80, "polyester", types.ConstructionKnit, types.SurfaceSubtleSheen, 6, 20},
	"corduroy":            {300, "cotton", types.ConstructionWoven, types.SurfaceDeepMatte, 3, 0},
	"stretch_crepe":       {200, "polyester", types.ConstructionWoven, types.SurfaceMatte, 6, 5},
	"scuba_knit":          {300, "polyester", types.ConstructionKnitDouble, types.SurfaceSubtleSheen, 3, 15},
	"performance_knit":    {160, "polyester", types.ConstructionKnit, types.SurfaceSubtleSheen, 5, 25},
	"double_georgette":    {100, "polyester", types.ConstructionWoven, types.SurfaceSubtleSheen, 8, 0},
	"stretch_poplin":      {130, "cotton", types.ConstructionWoven, types.SurfaceMatte, 4, 5},
}

// FabricByName looks up a fabric in the reference table.
func FabricByName(name string) (FabricData, bool) {
	fd, ok := FabricLookup[name]
	return fd, ok
}
