// Package tuicore is the rendering core of a terminal UI framework.
//
// Users import this single package for the complete core API: node
// construction, layout, dirty tracking, measurement caching, rendering to
// drawlists and the per-frame Pipeline that ties them together.
//
// A frame flows through four stages:
//
//	root := arena.Column(props, children...)  // immutable node tree
//	set := ComputeDirty(root, mounted, changed) // instance ids to recompute
//	tree, _ := Layout(root, 0, 0, w, h, AxisColumn, cache)
//	Render(builder, tree)                     // drawlist commands
//
// Pipeline.Frame runs all four and returns the encoded drawlist bytes.
package tuicore
