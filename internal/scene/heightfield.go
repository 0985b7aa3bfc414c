package scene

import "github.com/Faultbox/midgard-collide/pkg/math"

// Heightfield is a grid of heights placed at Origin.
type Heightfield struct {
	Name     string
	Origin   math.Vec3
	CellSize float32
	Heights  [][]float32 // [row][col], rows along Z, columns along X
}

// Rows returns the number of grid rows.
func (h *Heightfield) Rows() int {
	return len(h.Heights)
}

// Cols returns the number of grid columns.
func (h *Heightfield) Cols() int {
	if len(h.Heights) == 0 {
		return 0
	}
	return len(h.Heights[0])
}

// Triangles builds two up-facing triangles per cell.
func (h *Heightfield) Triangles() []math.Triangle {
	rows, cols := h.Rows(), h.Cols()
	if rows < 2 || cols < 2 {
		return nil
	}

	tris := make([]math.Triangle, 0, 2*(rows-1)*(cols-1))
	for i := 0; i < rows-1; i++ {
		for j := 0; j < cols-1; j++ {
			p00 := h.vertex(i, j)
			p01 := h.vertex(i, j+1)
			p10 := h.vertex(i+1, j)
			p11 := h.vertex(i+1, j+1)
			tris = append(tris, math.Tri(p00, p10, p11), math.Tri(p00, p11, p01))
		}
	}
	return tris
}

func (h *Heightfield) vertex(row, col int) math.Vec3 {
	return h.Origin.Add(math.Vec3{
		X: float32(col) * h.CellSize,
		Y: h.Heights[row][col],
		Z: float32(row) * h.CellSize,
	})
}

// HeightAt returns the bilinearly interpolated surface height at a world
// position. Positions outside the grid are clamped to its border.
func (h *Heightfield) HeightAt(worldX, worldZ float32) float32 {
	rows, cols := h.Rows(), h.Cols()
	if rows == 0 || cols == 0 || h.CellSize <= 0 {
		return h.Origin.Y
	}
	if rows == 1 || cols == 1 {
		return h.Origin.Y + h.Heights[0][0]
	}

	cellFX := (worldX - h.Origin.X) / h.CellSize
	cellFZ := (worldZ - h.Origin.Z) / h.CellSize

	cellX := int(cellFX)
	cellZ := int(cellFZ)

	// Clamp to valid range
	if cellFX < 0 {
		cellX = 0
	}
	if cellFZ < 0 {
		cellZ = 0
	}
	if cellX >= cols-1 {
		cellX = cols - 2
	}
	if cellZ >= rows-1 {
		cellZ = rows - 2
	}

	// Fractional position within the cell (0-1)
	fracX := clampf(cellFX-float32(cellX), 0, 1)
	fracZ := clampf(cellFZ-float32(cellZ), 0, 1)

	// Lower Z edge, then upper Z edge, then between them
	south := h.Heights[cellZ][cellX]*(1-fracX) + h.Heights[cellZ][cellX+1]*fracX
	north := h.Heights[cellZ+1][cellX]*(1-fracX) + h.Heights[cellZ+1][cellX+1]*fracX
	return h.Origin.Y + south*(1-fracZ) + north*fracZ
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
