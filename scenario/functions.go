package scenario

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// maxRectCells bounds the number of cells a single rect call may produce.
const maxRectCells = 1 << 20

var cellList = cty.List(cty.List(cty.Number))

// rectFunc returns the cells of the rectangle with corners (x0, y0)
// and (x1, y1) inclusive, in row-major order.
var rectFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "x0", Type: cty.Number},
		{Name: "y0", Type: cty.Number},
		{Name: "x1", Type: cty.Number},
		{Name: "y1", Type: cty.Number},
	},
	Type: function.StaticReturnType(cellList),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		// Coordinates are decoded as int32 so that the sides below
		// cannot overflow.
		var c [4]int32
		for i, arg := range args {
			if err := gocty.FromCtyValue(arg, &c[i]); err != nil {
				return cty.NilVal, function.NewArgError(i, err)
			}
		}
		x0, x1 := int64(min(c[0], c[2])), int64(max(c[0], c[2]))
		y0, y1 := int64(min(c[1], c[3])), int64(max(c[1], c[3]))
		w, h := x1-x0+1, y1-y0+1
		if w > maxRectCells || h > maxRectCells || w*h > maxRectCells {
			return cty.NilVal, fmt.Errorf("rectangle is %dx%d cells; the limit is %d cells", w, h, maxRectCells)
		}
		cells := make([]cty.Value, 0, w*h)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				cells = append(cells, cty.ListVal([]cty.Value{
					cty.NumberIntVal(x),
					cty.NumberIntVal(y),
				}))
			}
		}
		return cty.ListVal(cells), nil
	},
})

func functions() map[string]function.Function {
	return map[string]function.Function{
		"concat": stdlib.ConcatFunc,
		"max":    stdlib.MaxFunc,
		"min":    stdlib.MinFunc,
		"range":  stdlib.RangeFunc,
		"rect":   rectFunc,
	}
}
