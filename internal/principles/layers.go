package principles

import (
	"fmt"

	"github.com/kridha/fit-engine/internal/types"
)

// LayerModifications describes how an over-layer changes the read of
// whatever is worn underneath it. Only meaningful for layer categories.
func LayerModifications(g *types.GarmentProfile, b *types.BodyProfile) []types.LayerModification {
	var mods []types.LayerModification

	if g.IsStructured || g.HasLining {
		mods = append(mods, types.LayerModification{
			Aspect: "cling_neutralization",
			Effect: 0.25,
			Note:   "structured layer overrides cling of the garment underneath",
		})
	}
	if g.JacketClosure != nil && *g.JacketClosure == "open_front" {
		mods = append(mods, types.LayerModification{
			Aspect: "vertical_line_creation",
			Effect: 0.20,
			Note:   "open front adds two vertical lines over the base layer",
		})
	}
	if g.FitCategory != nil {
		switch *g.FitCategory {
		case "relaxed", "loose", "oversized":
			mods = append(mods, types.LayerModification{
				Aspect: "volume_addition",
				Effect: -0.10,
				Note:   "loose layer adds volume over whatever silhouette is underneath",
			})
		}
	}
	if g.JacketLength != nil {
		mods = append(mods, types.LayerModification{
			Aspect: "proportion_break_override",
			Effect: 0,
			Note:   fmt.Sprintf("layer hem at %s resets where the outfit's proportion break reads", *g.JacketLength),
		})
	}
	return mods
}

// LayerStylingNotes produces wearer-facing notes on how to style the
// layer for this body.
func LayerStylingNotes(g *types.GarmentProfile, b *types.BodyProfile) []string {
	var notes []string

	switch b.Shape() {
	case types.ShapePear:
		notes = append(notes, "Keep the layer open or ending above the hip to avoid pointing at the widest line.")
	case types.ShapeInvertedTriangle:
		notes = append(notes, "Favor soft, unpadded shoulders; let the layer fall straight from the shoulder.")
	case types.ShapeHourglass:
		notes = append(notes, "Belt the layer or choose one with waist shaping so the layer doesn't hide your waist.")
	case types.ShapeApple:
		notes = append(notes, "Wear the layer open over a column of one color underneath.")
	}

	if b.HasGoal(types.GoalLookTaller) {
		notes = append(notes, "Match the layer color to your bottom half to keep one continuous line.")
	}
	if b.IsPetite() && g.FitCategory != nil && *g.FitCategory == "oversized" {
		notes = append(notes, "Push or roll the sleeves to reclaim some frame from the oversized cut.")
	}
	return notes
}
