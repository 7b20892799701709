package layout

import (
	"github.com/grindlemire/go-tuicore/internal/geom"
	"github.com/grindlemire/go-tuicore/internal/node"
)

// flowItem holds intermediate state for one child of a linear container.
// It lives only for the duration of one flow call.
type flowItem struct {
	idx      int
	node     *node.Node
	main     int
	cross    int
	mainPos  int
	crossPos int
	flex     float64
	hasCross bool
	explicit geom.Size
}

// inFlow reports whether c takes part in its parent's flow accounting.
func inFlow(c *node.Node) bool {
	p := c.Props()
	return !p.Hidden && p.Position != node.PositionAbsolute
}

// flow arranges the in-flow children of t along axis within interior.
func (p *pass) flow(t *Tree, interior geom.Rect, axis geom.Axis) {
	props := t.Node.Props()
	avail := interior.Size()
	mainAvail := axis.Main(avail)
	crossAvail := axis.CrossOf(avail)

	items := make([]flowItem, 0, len(t.Node.Children()))
	for i, c := range t.Node.Children() {
		if inFlow(c) {
			items = append(items, flowItem{idx: i, node: c})
		}
	}
	if len(items) == 0 {
		return
	}
	totalGap := props.Gap * (len(items) - 1)

	// Phase 1: base main sizes. Fixed and intrinsic children are clamped
	// now so the free space below accounts for their final size.
	used := totalGap
	totalFlex := 0.0
	for i := range items {
		it := &items[i]
		cp := it.node.Props()
		w, h, hasW, hasH := explicitSize(cp, avail.Width, avail.Height)
		it.explicit = geom.Size{Width: w, Height: h}
		hasMain := hasH
		it.hasCross = hasW
		if axis == geom.AxisRow {
			hasMain, it.hasCross = hasW, hasH
		}
		it.flex = cp.Flex

		switch {
		case it.flex > 0:
			if hasMain {
				it.main = axis.Main(it.explicit)
			}
			totalFlex += it.flex
		case hasMain:
			it.main = clampMain(cp, axis, axis.Main(it.explicit), avail)
		default:
			size := p.measure(it.node, avail.Width, avail.Height, axis)
			it.main = clampMain(cp, axis, axis.Main(size), avail)
		}
		used += it.main
	}

	// Phase 2: share the free space among flex children.
	if totalFlex > 0 {
		distributeFlex(items, mainAvail-used, axis, avail)
	}

	// Phase 3: justify whatever space is still free.
	total := totalGap
	for i := range items {
		total += items[i].main
	}
	free := mainAvail - total
	offset := justifyOffset(props.Justify, free, len(items))
	spacing := justifySpacing(props.Justify, free, len(items))

	// Phase 4: cross sizes and alignment.
	for i := range items {
		it := &items[i]
		cp := it.node.Props()
		align := effectiveAlign(props.Align, cp.AlignSelf)
		switch {
		case it.hasCross:
			it.cross = axis.CrossOf(it.explicit)
		case align == node.AlignStretch:
			it.cross = crossAvail
		default:
			maxW, maxH := crossAvail, it.main
			if axis == geom.AxisRow {
				maxW, maxH = it.main, crossAvail
			}
			it.cross = axis.CrossOf(p.measure(it.node, maxW, maxH, axis))
		}
		it.cross = min(clampCross(cp, axis, it.cross, avail), crossAvail)
		it.crossPos = alignOffset(align, crossAvail, it.cross)
	}

	// Phase 5: place along the main axis. Children that run past the end of
	// the interior are truncated.
	cursor := offset
	for i := range items {
		it := &items[i]
		it.mainPos = min(cursor, mainAvail)
		m := max(0, min(it.main, mainAvail-it.mainPos))
		cursor += it.main + props.Gap + spacing

		var r geom.Rect
		if axis == geom.AxisRow {
			r = geom.Rect{X: interior.X + it.mainPos, Y: interior.Y + it.crossPos, Width: m, Height: it.cross}
		} else {
			r = geom.Rect{X: interior.X + it.crossPos, Y: interior.Y + it.mainPos, Width: it.cross, Height: m}
		}
		t.Children[it.idx] = p.place(it.node, r)
	}
}

// distributeFlex grows each flex item by its share of free. Shares are
// floored and leftover cells go to the earliest flex items. An item whose
// min or max changes its share is frozen at the clamped size, and the space
// left is shared again among the items still flexing.
func distributeFlex(items []flowItem, free int, axis geom.Axis, avail geom.Size) {
	frozen := make([]bool, len(items))
	base := make([]int, len(items))
	target := make([]int, len(items))
	for i := range items {
		frozen[i] = items[i].flex <= 0
		base[i] = items[i].main
	}

	for {
		space := free
		totalFlex := 0.0
		for i := range items {
			switch {
			case items[i].flex <= 0:
			case frozen[i]:
				space -= items[i].main - base[i]
			default:
				totalFlex += items[i].flex
			}
		}
		if totalFlex == 0 {
			return
		}

		space = max(space, 0)
		leftover := space
		for i := range items {
			if frozen[i] {
				continue
			}
			share := int(float64(space) * items[i].flex / totalFlex)
			target[i] = base[i] + share
			leftover -= share
		}
		for i := range items {
			if leftover == 0 {
				break
			}
			if !frozen[i] {
				target[i]++
				leftover--
			}
		}

		clamped := false
		for i := range items {
			if frozen[i] {
				continue
			}
			v := clampMain(items[i].node.Props(), axis, target[i], avail)
			if v != target[i] {
				items[i].main = v
				frozen[i] = true
				clamped = true
			}
		}
		if !clamped {
			for i := range items {
				if !frozen[i] {
					items[i].main = target[i]
				}
			}
			return
		}
	}
}

func clampMain(props *node.Props, axis geom.Axis, v int, avail geom.Size) int {
	if axis == geom.AxisRow {
		return clampAxis(v, props.MinWidth, props.MaxWidth, avail.Width)
	}
	return clampAxis(v, props.MinHeight, props.MaxHeight, avail.Height)
}

func clampCross(props *node.Props, axis geom.Axis, v int, avail geom.Size) int {
	if axis == geom.AxisRow {
		return clampAxis(v, props.MinHeight, props.MaxHeight, avail.Height)
	}
	return clampAxis(v, props.MinWidth, props.MaxWidth, avail.Width)
}

// effectiveAlign resolves a child's alignment: its own AlignSelf, then the
// container's Align, then stretch.
func effectiveAlign(container, self node.Align) node.Align {
	if self != node.AlignAuto {
		return self
	}
	if container != node.AlignAuto {
		return container
	}
	return node.AlignStretch
}

// justifyOffset returns the initial main-axis offset for the justify mode.
func justifyOffset(justify node.Justify, free, count int) int {
	if free <= 0 || count == 0 {
		return 0
	}
	switch justify {
	case node.JustifyEnd:
		return free
	case node.JustifyCenter:
		return free / 2
	case node.JustifySpaceAround:
		return free / (count * 2)
	case node.JustifySpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

// justifySpacing returns the extra space inserted between children.
func justifySpacing(justify node.Justify, free, count int) int {
	if free <= 0 || count <= 1 {
		return 0
	}
	switch justify {
	case node.JustifySpaceBetween:
		return free / (count - 1)
	case node.JustifySpaceAround:
		return free / count
	case node.JustifySpaceEvenly:
		return free / (count + 1)
	default:
		return 0
	}
}

// alignOffset returns a child's cross-axis offset within the interior.
func alignOffset(align node.Align, crossAvail, size int) int {
	switch align {
	case node.AlignEnd:
		return max(0, crossAvail-size)
	case node.AlignCenter:
		return max(0, (crossAvail-size)/2)
	default:
		return 0
	}
}
