package divide

import (
	"github.com/SajedehK/ExaMesh/cellmap"
	"github.com/SajedehK/ExaMesh/mesh"
)

// Divider is the per-shape refinement contract (spec.md §4.5): edges, then
// faces, then strictly interior vertices, then fine-cell emission.
type Divider interface {
	DivideEdges()
	DivideFaces()
	DivideInterior()
	CreateNewCells()
}

// RunDivider executes a divider's full pipeline in the required order.
func RunDivider(d Divider) {
	d.DivideEdges()
	d.DivideFaces()
	d.DivideInterior()
	d.CreateNewCells()
}

// NewDivider returns the appropriate divider for a coarse cell's shape tag.
// It is a dispatch table for shape-polymorphic callers; the per-part driver
// does not use it and constructs the concrete dividers directly.
func NewDivider(ctx *Context, tag mesh.CellTag, cellIndex int, mapType cellmap.MappingType) Divider {
	switch tag {
	case mesh.TagTet:
		return NewTetDivider(ctx, ctx.Src.GetTetConn(cellIndex), mapType)
	case mesh.TagPyramid:
		return NewPyramidDivider(ctx, ctx.Src.GetPyrConn(cellIndex), mapType)
	case mesh.TagPrism:
		return NewPrismDivider(ctx, ctx.Src.GetPrismConn(cellIndex), mapType)
	case mesh.TagHex:
		return NewHexDivider(ctx, ctx.Src.GetHexConn(cellIndex), mapType)
	default:
		panic("divide: unsupported coarse cell tag")
	}
}
