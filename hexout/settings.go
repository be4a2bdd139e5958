package hexout

const (
	// MaxGroupSize is the largest number of bytes that may be rendered as one group.
	MaxGroupSize = 16
	// MaxGroupsPerLine bounds GroupsPerLine; larger values are clamped.
	MaxGroupsPerLine = 4096
)

// Settings controls the layout of a dump. The zero value is not useful; start from
// DefaultSettings and override individual fields.
type Settings struct {
	// AddressOrigin is the address displayed for byte 0 of the buffer.
	AddressOrigin uint64
	// AddressWidth is the number of hex digits in the address column. 0 hides the column.
	AddressWidth int
	// AlignAddress starts the first line on a line boundary, padding the bytes
	// before the requested offset.
	AlignAddress bool
	BigEndian    bool
	// GroupSize is the number of bytes per group, 1 through MaxGroupSize.
	// It does not have to be a power of two.
	GroupSize     int
	GroupsPerLine int
	// InvalidDataPlaceholder replaces both hex digits of a byte that is
	// missing from a partially filled group.
	InvalidDataPlaceholder byte
	// UnprintablePlaceholder is shown in the ascii column for non printable bytes.
	UnprintablePlaceholder byte
	ShowASCII              bool
	ShowCenterline         bool
	ShowOffset             bool
	// Strict rejects an offset that is not a multiple of GroupSize instead of padding.
	Strict    bool
	Uppercase bool
	// ErrorPrefix and ErrorPostfix wrap every placeholder byte, e.g. ANSI colour codes.
	ErrorPrefix  string
	ErrorPostfix string
}

// DefaultSettings returns 16 single byte groups per line with an 8 digit
// address, centerline and ascii column.
func DefaultSettings() Settings {
	return Settings{
		AddressWidth:           8,
		AlignAddress:           true,
		GroupSize:              1,
		GroupsPerLine:          16,
		InvalidDataPlaceholder: '?',
		UnprintablePlaceholder: '.',
		ShowASCII:              true,
		ShowCenterline:         true,
		ShowOffset:             true,
	}
}

// layout holds the constants derived from Settings for one dump call.
type layout struct {
	settings      Settings
	groupSize     int
	groupsPerLine int
	bytesPerLine  int
	// base is the buffer position of the first byte of line 0
	base int
	// offset and end bound the real bytes: [offset, end)
	offset int
	end    int
	lines  int
	// center is the group index preceded by the centerline gap, 0 for none
	center     int
	hexWidth   int
	asciiWidth int
}

func resolveLayout(dataLen int, s Settings, offset int) (*layout, error) {
	if s.GroupSize < 1 || s.GroupSize > MaxGroupSize {
		return nil, &InvalidGroupSizeError{GroupSize: s.GroupSize}
	}
	if offset < 0 {
		offset = 0
	}
	if s.Strict && offset%s.GroupSize != 0 {
		return nil, &UnalignedOffsetError{Offset: offset, GroupSize: s.GroupSize}
	}

	l := layout{
		settings:      s,
		groupSize:     s.GroupSize,
		groupsPerLine: min(max(s.GroupsPerLine, 1), MaxGroupsPerLine),
		offset:        offset,
		end:           dataLen,
		base:          offset,
	}
	l.bytesPerLine = l.groupSize * l.groupsPerLine
	if s.AlignAddress {
		l.base = offset - offset%l.bytesPerLine
	}
	if offset < dataLen {
		l.lines = (dataLen - l.base + l.bytesPerLine - 1) / l.bytesPerLine
	}

	l.hexWidth = l.bytesPerLine*2 + l.groupsPerLine - 1
	l.asciiWidth = l.bytesPerLine
	if s.ShowCenterline {
		l.center = l.groupsPerLine / 2
	}
	if l.center > 0 {
		l.hexWidth++
		l.asciiWidth++
	}
	return &l, nil
}

// window returns the first and last line to render, or ok=false for an empty window.
func (l *layout) window(startLine, endLine int) (first, last int, ok bool) {
	if l.lines == 0 {
		return 0, 0, false
	}
	if startLine == 0 && endLine == 0 {
		return 0, l.lines - 1, true
	}
	first = max(startLine, 0)
	last = min(endLine, l.lines-1)
	if last < first {
		return 0, 0, false
	}
	return first, last, true
}

// LineCount returns the number of lines a complete dump of dataLen bytes
// starting at offset would contain.
func LineCount(dataLen int, s Settings, offset int) (int, error) {
	l, err := resolveLayout(dataLen, s, offset)
	if err != nil {
		return 0, err
	}
	return l.lines, nil
}
