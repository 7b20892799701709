package drawlist

// Limits bounds the size of one drawlist. A build that would exceed any
// limit fails with DL_LIMIT; nothing is truncated.
type Limits struct {
	MaxTotalBytes      int
	MaxCmds            int
	MaxStrings         int
	MaxBlobs           int
	MaxClipDepth       int
	MaxTextRunSegments int
}

// DefaultLimits returns the engine's default drawlist limits.
func DefaultLimits() Limits {
	return Limits{
		MaxTotalBytes:      4 << 20,
		MaxCmds:            100_000,
		MaxStrings:         65_536,
		MaxBlobs:           4_096,
		MaxClipDepth:       64,
		MaxTextRunSegments: 4_096,
	}
}

// withDefaults fills zero fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxTotalBytes <= 0 {
		l.MaxTotalBytes = d.MaxTotalBytes
	}
	if l.MaxCmds <= 0 {
		l.MaxCmds = d.MaxCmds
	}
	if l.MaxStrings <= 0 {
		l.MaxStrings = d.MaxStrings
	}
	if l.MaxBlobs <= 0 {
		l.MaxBlobs = d.MaxBlobs
	}
	if l.MaxClipDepth <= 0 {
		l.MaxClipDepth = d.MaxClipDepth
	}
	if l.MaxTextRunSegments <= 0 {
		l.MaxTextRunSegments = d.MaxTextRunSegments
	}
	return l
}
