package main

import (
	"fmt"
	"math"

	"github.com/grindlemire/go-tuicore"
	"github.com/grindlemire/go-tuicore/internal/node"
	"github.com/grindlemire/go-tuicore/internal/style"
)

// Instance ids of the demo widgets, stable across ticks.
const (
	idRoot tuicore.InstanceID = iota + 1
	idHeader
	idTitle
	idSpinner
	idBody
	idMenu
	idPanel
	idProgress
	idSpark
	idTable
	idStatus
)

var demoMenu = []string{"overview", "frames", "cache", "settings"}

// demoTree builds the demo dashboard as it looks at tick.
func demoTree(a *tuicore.Arena, tick int) *tuicore.Node {
	accent := style.NewStyle().Foreground(style.ANSIColor(6))

	spark := make([]float64, 16)
	for i := range spark {
		spark[i] = math.Sin(float64(i+tick) / 3)
	}

	header := a.NewInstance(idHeader, node.KindRow, tuicore.Props{Gap: 1, Height: tuicore.Fixed(1)},
		a.NewInstance(idTitle, node.KindText, tuicore.Props{Text: "tuicore demo", Style: accent.Bold()}),
		a.NewInstance(idSpinner, node.KindSpinner, tuicore.Props{Active: tick, Label: "rendering"}),
	)

	menu := a.NewInstance(idMenu, node.KindList, tuicore.Props{
		Items:  demoMenu,
		Active: tick % len(demoMenu),
		Border: tuicore.BorderSingle,
		Title:  "menu",
		Width:  tuicore.Fixed(14),
	})

	panel := a.NewInstance(idPanel, node.KindColumn, tuicore.Props{Flex: 1, Gap: 1},
		a.NewInstance(idProgress, node.KindProgress, tuicore.Props{Value: float64(tick%11) / 10, Style: accent}),
		a.NewInstance(idSpark, node.KindSparkline, tuicore.Props{Values: spark}),
		a.NewInstance(idTable, node.KindTable, tuicore.Props{Cells: [][]string{
			{"stage", "state"},
			{"layout", "ok"},
			{"encode", "ok"},
		}}),
	)

	body := a.NewInstance(idBody, node.KindRow, tuicore.Props{Flex: 1, Gap: 1}, menu, panel)

	status := a.NewInstance(idStatus, node.KindStatus, tuicore.Props{
		Label: fmt.Sprintf("frame %d", tick),
		Style: style.NewStyle().Dim(),
	})

	return a.NewInstance(idRoot, node.KindColumn, tuicore.Props{
		Border:  tuicore.BorderRounded,
		Title:   "tuicore",
		Padding: tuicore.EdgeTRBL(0, 1, 0, 1),
	}, header, body, status)
}

// demoChanges reports which demo instances differ at tick from the
// previous tick. The first tick mounts everything.
func demoChanges(root *tuicore.Node, tick int) tuicore.Changes {
	if tick == 0 {
		var mounted []tuicore.InstanceID
		node.Walk(root, func(n, _ *node.Node) bool {
			mounted = append(mounted, n.Instance())
			return true
		})
		return tuicore.Changes{Mounted: mounted}
	}
	return tuicore.Changes{Changed: []tuicore.InstanceID{idSpinner, idMenu, idProgress, idSpark, idStatus}}
}
