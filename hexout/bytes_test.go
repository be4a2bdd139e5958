package hexout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytesDump(t *testing.T) {
	data := Bytes(sequence(0, 9))
	expected := "00000000: 00 01 02 03 04 05 06 07  08 09                   |........ ..      |"

	result, err := data.Dump()
	require.Nil(t, err)
	require.Equal(t, expected, result)

	result, err = data.DumpLines(0, 1)
	require.Nil(t, err)
	require.Equal(t, expected, result)
}

func TestBytesDumpWithSettings(t *testing.T) {
	s := DefaultSettings()
	s.GroupSize = 2
	s.GroupsPerLine = 8
	s.ShowASCII = false

	result, err := Bytes(sequence(0, 9)).DumpWithSettings(s)
	require.Nil(t, err)
	require.Equal(t, "00000000: 0100 0302 0504 0706  0908", result)

	result, err = Bytes(sequence(0, 47)).DumpLinesWithSettings(s, 2, 2)
	require.Nil(t, err)
	require.Equal(t, "00000020: 2120 2322 2524 2726  2928 2b2a 2d2c 2f2e", result)

	s.GroupSize = 20
	_, err = Bytes(sequence(0, 9)).DumpWithSettings(s)
	require.NotNil(t, err)
}

func TestLineCount(t *testing.T) {
	s := DefaultSettings()
	count, err := LineCount(0, s, 0)
	require.Nil(t, err)
	require.Equal(t, 0, count)

	count, err = LineCount(33, s, 0)
	require.Nil(t, err)
	require.Equal(t, 3, count)

	// aligned start adds the lead padding to the first line
	count, err = LineCount(32, s, 3)
	require.Nil(t, err)
	require.Equal(t, 2, count)

	s.AlignAddress = false
	count, err = LineCount(32, s, 3)
	require.Nil(t, err)
	require.Equal(t, 2, count)

	count, err = LineCount(20, s, 3)
	require.Nil(t, err)
	require.Equal(t, 2, count)

	s.GroupSize = 0
	_, err = LineCount(32, s, 0)
	require.NotNil(t, err)
}
