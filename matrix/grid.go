package matrix

// Grid is an immutable boolean module matrix, already scaled to pixel size.
type Grid struct {
	width, height int
	bits          []bool
}

func newGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, bits: make([]bool, width*height)}
}

func (g *Grid) set(x, y int) {
	g.bits[y*g.width+x] = true
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// At reports whether the module covering pixel (x, y) is dark.
// Coordinates outside the grid are light.
func (g *Grid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.bits[y*g.width+x]
}

// render scales a square module matrix (indexed [y][x], no quiet zone) into
// a width x height grid with a quietZone margin, centering the symbol.
func render(modules [][]bool, width, height, quietZone int) *Grid {
	inputWidth := len(modules)
	inputHeight := inputWidth
	qrWidth := inputWidth + quietZone*2
	qrHeight := inputHeight + quietZone*2
	outputWidth := max(width, qrWidth)
	outputHeight := max(height, qrHeight)

	multiple := min(outputWidth/qrWidth, outputHeight/qrHeight)
	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	out := newGrid(outputWidth, outputHeight)
	for inputY, outputY := 0, topPadding; inputY < inputHeight; inputY, outputY = inputY+1, outputY+multiple {
		row := modules[inputY]
		for inputX, outputX := 0, leftPadding; inputX < inputWidth; inputX, outputX = inputX+1, outputX+multiple {
			if !row[inputX] {
				continue
			}
			for dy := 0; dy < multiple; dy++ {
				for dx := 0; dx < multiple; dx++ {
					out.set(outputX+dx, outputY+dy)
				}
			}
		}
	}
	return out
}
