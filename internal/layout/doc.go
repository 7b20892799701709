// Package layout resolves a node tree into positioned cell rectangles.
//
// The solver is a pure function of (tree, origin, offered size, axis). It
// consults a measurement cache for intrinsic sizes when one is passed and
// skips cache reads for nodes in the active dirty set. Structurally invalid
// properties anywhere in the tree fail the whole call with INVALID_PROPS;
// no partial tree is ever returned.
//
// # Sizing
//
// Box and column flow children vertically, row horizontally. Fixed children
// take their resolved size, flex children share what remains after fixed
// children and gaps, and cross-axis alignment positions each child in the
// container's interior (border, then padding, removed from its rect).
//
// # Hit testing
//
// HitTest walks the positioned tree depth-first with a running clip equal
// to the intersection of ancestor rects. Later siblings are on top.
package layout
