package hexout

import (
	"fmt"
	"strings"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// Dump renders data starting at offset as a hex dump. startLine and endLine select
// an inclusive window of lines of the complete dump; 0, 0 selects every line.
// Lines are separated by a newline with none after the last line.
func Dump(data []byte, s Settings, offset, startLine, endLine int) (string, error) {
	l, err := resolveLayout(len(data), s, offset)
	if err != nil {
		return "", err
	}
	first, last, ok := l.window(startLine, endLine)
	if !ok {
		return "", nil
	}

	var output strings.Builder
	output.Grow(l.outputSize(first, last))
	for line := first; line <= last; line++ {
		if line > first {
			output.WriteByte('\n')
		}
		l.writeLine(&output, data, line)
	}
	return output.String(), nil
}

// outputSize estimates the length of lines first through last.
func (l *layout) outputSize(first, last int) int {
	lines := last - first + 1
	present := min(lines*l.bytesPerLine, l.end-(l.base+first*l.bytesPerLine))
	size := present*3 + lines*(max(l.settings.AddressWidth, 0)+4)
	if l.settings.ShowASCII {
		size += lines * (l.hexWidth + l.asciiWidth)
	}
	return size
}

func (l *layout) writeLine(output *strings.Builder, data []byte, line int) {
	s := &l.settings
	start := l.base + line*l.bytesPerLine
	if s.ShowOffset && s.AddressWidth > 0 {
		output.WriteString(fmt.Sprintf("%0*x: ", s.AddressWidth, s.AddressOrigin+uint64(start)))
	}

	ascii := make([]byte, 0, min(l.asciiWidth, l.end-start+1))
	width := 0
	for group := 0; group < l.groupsPerLine; group++ {
		pos := start + group*l.groupSize
		if pos >= l.end {
			break
		}
		if group > 0 {
			output.WriteByte(' ')
			width++
		}
		if group == l.center && group > 0 {
			output.WriteByte(' ')
			width++
			ascii = append(ascii, ' ')
		}
		width += l.writeGroup(output, data, pos)
		ascii = l.appendASCII(ascii, data, pos)
	}

	if s.ShowASCII {
		output.WriteString(strings.Repeat(" ", l.hexWidth-width))
		output.WriteString(" |")
		output.Write(ascii)
		output.WriteString(strings.Repeat(" ", l.asciiWidth-len(ascii)))
		output.WriteByte('|')
	}
}

// writeGroup renders the group starting at buffer position pos and returns the
// number of visible columns written.
func (l *layout) writeGroup(output *strings.Builder, data []byte, pos int) int {
	s := &l.settings
	if pos+l.groupSize <= l.offset {
		output.WriteString(strings.Repeat("  ", l.groupSize))
		return 2 * l.groupSize
	}
	digits := lowerDigits
	if s.Uppercase {
		digits = upperDigits
	}
	for i := 0; i < l.groupSize; i++ {
		p := pos + i
		if !s.BigEndian {
			p = pos + l.groupSize - 1 - i
		}
		if p < l.offset || p >= l.end {
			output.WriteString(s.ErrorPrefix)
			output.WriteByte(s.InvalidDataPlaceholder)
			output.WriteByte(s.InvalidDataPlaceholder)
			output.WriteString(s.ErrorPostfix)
			continue
		}
		b := data[p]
		output.WriteByte(digits[b>>4])
		output.WriteByte(digits[b&0x0f])
	}
	return 2 * l.groupSize
}

// appendASCII adds the group at pos to the ascii column in buffer order.
func (l *layout) appendASCII(ascii []byte, data []byte, pos int) []byte {
	for p := pos; p < pos+l.groupSize; p++ {
		switch {
		case p < l.offset || p >= l.end:
			ascii = append(ascii, ' ')
		case data[p] >= 0x20 && data[p] <= 0x7e:
			ascii = append(ascii, data[p])
		default:
			ascii = append(ascii, l.settings.UnprintablePlaceholder)
		}
	}
	return ascii
}
