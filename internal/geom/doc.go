// Package geom holds the cell-space geometry shared by the layout solver and
// the drawlist codec: rectangles, edges, sizes, dimension values and
// flow axes.
package geom
