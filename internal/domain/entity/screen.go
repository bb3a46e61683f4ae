package entity

// Screen describes the output the trees are laid out on.
// BarHeight is zero when no status bar is present.
type Screen struct {
	Width     uint16 `json:"width" toml:"width"`
	Height    uint16 `json:"height" toml:"height"`
	BarHeight uint16 `json:"bar_height" toml:"bar_height"`
}

// Usable returns the area available for tiling: the full screen minus gap on
// every side, pushed below the status bar when there is one.
func (s Screen) Usable(gap uint16) Rectangle {
	return Rectangle{
		X:      int16(gap),
		Y:      int16(s.BarHeight + gap),
		Width:  sub(s.Width, 2*gap),
		Height: sub(s.Height, 2*gap+s.BarHeight),
	}
}
