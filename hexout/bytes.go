package hexout

// Bytes adds dump methods to a byte slice.
type Bytes []byte

// Dump renders every line with DefaultSettings.
func (b Bytes) Dump() (string, error) {
	return Dump(b, DefaultSettings(), 0, 0, 0)
}

// DumpLines renders lines startLine through endLine with DefaultSettings.
func (b Bytes) DumpLines(startLine, endLine int) (string, error) {
	return Dump(b, DefaultSettings(), 0, startLine, endLine)
}

// DumpWithSettings renders every line with s.
func (b Bytes) DumpWithSettings(s Settings) (string, error) {
	return Dump(b, s, 0, 0, 0)
}

// DumpLinesWithSettings renders lines startLine through endLine with s.
func (b Bytes) DumpLinesWithSettings(s Settings, startLine, endLine int) (string, error) {
	return Dump(b, s, 0, startLine, endLine)
}
