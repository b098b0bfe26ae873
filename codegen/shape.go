package codegen

import (
	"goa.design/facet/decl"
	"goa.design/facet/model"
)

// analyzeShape classifies a declared return type into one of the six return
// shapes. Matching is structural and ordered: outcome sum, optional wrapper,
// sequence, lazy sequence, unit, then plain value as the fallback.
func analyzeShape(ret decl.TypeRef) model.ReturnShape {
	if ret.IsZero() || (ret.Name == "Unit" && ret.Qualifier == "") {
		return model.ReturnShape{Kind: model.ShapeUnit}
	}
	if ret.Qualifier == "" {
		switch ret.Name {
		case "Outcome", "Result":
			shape := model.ReturnShape{Kind: model.ShapeOutcome}
			if len(ret.Args) > 0 {
				shape.Elem = ret.Args[0]
			}
			if len(ret.Args) > 1 {
				shape.Err = ret.Args[1]
			}
			return shape
		case "Optional":
			shape := model.ReturnShape{Kind: model.ShapeOptional}
			if len(ret.Args) > 0 {
				shape.Elem = ret.Args[0]
			}
			return shape
		case "Sequence":
			shape := model.ReturnShape{Kind: model.ShapeSequence}
			if len(ret.Args) > 0 {
				shape.Elem = ret.Args[0]
			}
			return shape
		case "Stream":
			shape := model.ReturnShape{Kind: model.ShapeStream}
			if len(ret.Args) > 0 {
				shape.Elem = ret.Args[0]
			}
			return shape
		}
	}
	return model.ReturnShape{Kind: model.ShapePlain, Elem: ret}
}
