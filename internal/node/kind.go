package node

import "fmt"

// Kind identifies the widget type of a node.
type Kind uint8

const (
	KindBox Kind = iota
	KindRow
	KindColumn
	KindGrid
	KindText
	KindSpacer

	// Interactive kinds
	KindButton
	KindInput
	KindTextarea
	KindCheckbox
	KindRadio
	KindSelect
	KindSlider
	KindLink

	// Display kinds
	KindProgress
	KindSpinner
	KindDivider
	KindBadge
	KindKbd
	KindIcon
	KindStatus
	KindSparkline
	KindGauge
	KindRichText
	KindTable
	KindList
	KindTree
	KindCanvas
	KindImage

	// Structural kinds
	KindScroll
	KindLayers
	KindModal
	KindField

	// Navigation composites
	KindTabs
	KindAccordion
	KindBreadcrumb
	KindPagination

	kindCount
)

var kindNames = [kindCount]string{
	KindBox:        "box",
	KindRow:        "row",
	KindColumn:     "column",
	KindGrid:       "grid",
	KindText:       "text",
	KindSpacer:     "spacer",
	KindButton:     "button",
	KindInput:      "input",
	KindTextarea:   "textarea",
	KindCheckbox:   "checkbox",
	KindRadio:      "radio",
	KindSelect:     "select",
	KindSlider:     "slider",
	KindLink:       "link",
	KindProgress:   "progress",
	KindSpinner:    "spinner",
	KindDivider:    "divider",
	KindBadge:      "badge",
	KindKbd:        "kbd",
	KindIcon:       "icon",
	KindStatus:     "status",
	KindSparkline:  "sparkline",
	KindGauge:      "gauge",
	KindRichText:   "richtext",
	KindTable:      "table",
	KindList:       "list",
	KindTree:       "tree",
	KindCanvas:     "canvas",
	KindImage:      "image",
	KindScroll:     "scroll",
	KindLayers:     "layers",
	KindModal:      "modal",
	KindField:      "field",
	KindTabs:       "tabs",
	KindAccordion:  "accordion",
	KindBreadcrumb: "breadcrumb",
	KindPagination: "pagination",
}

// String returns the kind's name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsContainer reports whether the kind lays out its children.
func (k Kind) IsContainer() bool {
	switch k {
	case KindBox, KindRow, KindColumn, KindGrid, KindScroll, KindLayers, KindModal, KindField,
		KindTabs, KindAccordion, KindBreadcrumb, KindPagination:
		return true
	}
	return false
}
