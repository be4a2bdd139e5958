/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "hexout",
	Short:   "render files as configurable hex dumps",
	Long: `
Render binary data as a hex dump with an address column, grouped hex bytes of
any size and byte order, and an optional ASCII sidebar
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		err := InitLogging(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if viper.ConfigFileUsed() != "" {
			log.Debug().Str("file", viper.ConfigFileUsed()).Msg("config loaded")
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionString(rootCmd, "log-level", "", "info", "log level (trace, debug, info, warn, error)")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")

	OptionString(rootCmd, "offset", "o", "0", "first byte of the input to dump")
	OptionString(rootCmd, "start-line", "s", "0", "first line of the dump to output")
	OptionString(rootCmd, "end-line", "e", "0", "last line of the dump to output (0 with start-line 0 outputs all lines)")
	OptionString(rootCmd, "origin", "", "0", "address displayed for the first byte of the input")
	OptionString(rootCmd, "address-width", "w", "8", "hex digits in the address column")
	OptionString(rootCmd, "group-size", "g", "1", "bytes per group (1-16)")
	OptionString(rootCmd, "groups-per-line", "n", "16", "groups per line")
	OptionString(rootCmd, "placeholder", "", "?", "glyph for bytes missing from a partial group")
	OptionString(rootCmd, "error-color", "", "", "colour of placeholder glyphs (red, green, yellow, blue, magenta, cyan)")
	OptionSwitch(rootCmd, "big-endian", "b", "render groups in big endian byte order")
	OptionSwitch(rootCmd, "uppercase", "u", "use uppercase hex digits")
	OptionSwitch(rootCmd, "strict", "", "fail when the offset is not a multiple of the group size")
	OptionSwitch(rootCmd, "no-align", "", "start the first line at the offset instead of a line boundary")
	OptionSwitch(rootCmd, "no-ascii", "", "hide the ASCII column")
	OptionSwitch(rootCmd, "no-centerline", "", "do not split lines in the middle")
	OptionSwitch(rootCmd, "no-offset", "", "hide the address column")
}

// InitConfig reads the config file and HEXOUT_* environment variables.
func InitConfig() {
	viper.SetEnvPrefix("hexout")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	filename := ViperGetString("config")
	if filename != "" {
		viper.SetConfigFile(filename)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".hexout")
		viper.SetConfigType("yaml")
	}
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if filename == "" && errors.As(err, &notFound) {
			return
		}
		cobra.CheckErr(err)
	}
}
