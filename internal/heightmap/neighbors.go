package heightmap

import "image"

// NeighborPixels returns the coordinates of all neighbours of x, y which lie
// inside a width*height grid.
// Order: left, right, up, down, up-left, up-right, down-left, down-right
func NeighborPixels(x, y, width, height int) []image.Point {
	return AppendNeighborPixels(make([]image.Point, 0, 8), x, y, width, height)
}

// AppendNeighborPixels is like NeighborPixels but appends to dst
func AppendNeighborPixels(dst []image.Point, x, y, width, height int) []image.Point {
	left := x > 0
	right := x < width-1
	up := y > 0
	down := y < height-1

	if left {
		dst = append(dst, image.Point{x - 1, y})
	}
	if right {
		dst = append(dst, image.Point{x + 1, y})
	}
	if up {
		dst = append(dst, image.Point{x, y - 1})
	}
	if down {
		dst = append(dst, image.Point{x, y + 1})
	}

	// diagonals
	if left && up {
		dst = append(dst, image.Point{x - 1, y - 1})
	}
	if right && up {
		dst = append(dst, image.Point{x + 1, y - 1})
	}
	if left && down {
		dst = append(dst, image.Point{x - 1, y + 1})
	}
	if right && down {
		dst = append(dst, image.Point{x + 1, y + 1})
	}

	return dst
}
