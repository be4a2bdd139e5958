package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rstms/hexout/hexout"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// resetFlags restores flag defaults and drops any config file or override
// left in viper by an earlier test.
func resetFlags(t *testing.T) {
	viper.Reset()
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.Nil(t, f.Value.Set(f.DefValue))
		f.Changed = false
		require.Nil(t, viper.BindPFlag(viperKey(f.Name), f))
	})
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Setenv("HOME", t.TempDir())
	resetFlags(t)
	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	require.Nil(t, err, stderr.String())
	return stdout.String()
}

func TestDefaultSettings(t *testing.T) {
	resetFlags(t)
	s, err := settingsFromViper()
	require.Nil(t, err)
	require.Equal(t, hexout.DefaultSettings(), s)
}

func TestDumpStdin(t *testing.T) {
	output := execute(t, "Hello, World!", "dump", "-")
	expected := "00000000: 48 65 6c 6c 6f 2c 20 57  6f 72 6c 64 21" + strings.Repeat(" ", 10) + "|Hello, W orld!   |\n"
	require.Equal(t, expected, output)
}

func TestDumpFile(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}
	filename := filepath.Join(t.TempDir(), "data.bin")
	require.Nil(t, os.WriteFile(filename, data, 0600))

	output := execute(t, "", "dump", "-g", "4", "-n", "4", "--uppercase", filename)
	require.Equal(t, "00000000: 03020100 07060504  0B0A0908 0F0E0D0C |........ ........|\n"+
		"00000010: 13121110 17161514  1B1A1918 1F1E1D1C |........ ........|\n", output)

	output = execute(t, "", "dump", "--start-line", "1", "--end-line", "1", "--no-ascii", "--group-size", "0x4", "-n", "4", filename)
	require.Equal(t, "00000010: 13121110 17161514  1b1a1918 1f1e1d1c\n", output)

	output = execute(t, "", "dump", "--offset", "3", "-w", "2", "-g", "4", "-n", "4", "--big-endian", filename)
	require.Equal(t, "00: ??????03 04050607  08090a0b 0c0d0e0f |   ..... ........|\n"+
		"10: 10111213 14151617  18191a1b 1c1d1e1f |........ ........|\n", output)

	output = execute(t, "", "dump", "--offset", "30", "--no-align", "--no-offset", "--no-centerline", "--origin", "0x1000", filename)
	require.Equal(t, "1e 1f"+strings.Repeat(" ", 42)+" |..              |\n", output)
}

func TestDumpEmptyWindow(t *testing.T) {
	output := execute(t, strings.Repeat("x", 16), "dump", "-s", "2", "-e", "2", "-")
	require.Equal(t, "", output)
}

func TestLinesCommand(t *testing.T) {
	output := execute(t, strings.Repeat("x", 100), "lines", "-")
	require.Equal(t, "7\n", output)

	output = execute(t, strings.Repeat("x", 100), "lines", "-g", "4", "-n", "8", "-")
	require.Equal(t, "4\n", output)
}

func TestErrorColor(t *testing.T) {
	prefix, postfix, err := errorColor("Red")
	require.Nil(t, err)
	require.Equal(t, "\x1b[31m", prefix)
	require.Equal(t, "\x1b[0m", postfix)

	_, _, err = errorColor("plaid")
	require.NotNil(t, err)

	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })
	ViperSet("error-color", "cyan")
	s, err := settingsFromViper()
	require.Nil(t, err)
	require.Equal(t, "\x1b[36m", s.ErrorPrefix)
	require.Equal(t, "\x1b[0m", s.ErrorPostfix)
}

func TestBadNumber(t *testing.T) {
	resetFlags(t)
	require.Nil(t, rootCmd.PersistentFlags().Set("group-size", "four"))
	_, err := settingsFromViper()
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "group-size")
	resetFlags(t)
}

func TestConfigFile(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })
	viper.SetConfigFile(filepath.Join("testdata", "config.yaml"))
	require.Nil(t, viper.ReadInConfig())

	s, err := settingsFromViper()
	require.Nil(t, err)
	require.Equal(t, 2, s.GroupSize)
	require.Equal(t, 8, s.GroupsPerLine)
	require.Equal(t, uint64(0x100), s.AddressOrigin)
	require.Equal(t, byte('-'), s.InvalidDataPlaceholder)
	require.False(t, s.ShowASCII)
	require.True(t, s.Uppercase)
	require.True(t, s.ShowOffset)

	// flags override the config file
	require.Nil(t, rootCmd.PersistentFlags().Set("group-size", "4"))
	s, err = settingsFromViper()
	require.Nil(t, err)
	require.Equal(t, 4, s.GroupSize)
}

func TestPlaceholder(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	require.Nil(t, rootCmd.PersistentFlags().Set("placeholder", "#"))
	s, err := settingsFromViper()
	require.Nil(t, err)
	require.Equal(t, byte('#'), s.InvalidDataPlaceholder)

	for _, value := range []string{"·", "ab", "\t"} {
		require.Nil(t, rootCmd.PersistentFlags().Set("placeholder", value))
		_, err = settingsFromViper()
		require.NotNil(t, err, value)
		require.Contains(t, err.Error(), "placeholder")
	}
}

func TestDumpDefaults(t *testing.T) {
	output := execute(t, "AB", "dump", "-")
	require.Equal(t, "00000000: 41 42"+strings.Repeat(" ", 44)+"|AB               |\n", output)
}
