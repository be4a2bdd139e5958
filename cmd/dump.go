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
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/rstms/hexout/hexout"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "write a hex dump of FILE",
	Long: `
Write a hex dump of FILE to stdout.  Use - to read stdin.

The layout is controlled by the global flags, a config file or HEXOUT_*
environment variables.  Numeric values may be decimal or 0x prefixed hex.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readInput(cmd, args[0])
		cobra.CheckErr(err)
		settings, err := settingsFromViper()
		cobra.CheckErr(err)
		offset, err := viperGetNumber("offset")
		cobra.CheckErr(err)
		startLine, err := viperGetNumber("start-line")
		cobra.CheckErr(err)
		endLine, err := viperGetNumber("end-line")
		cobra.CheckErr(err)

		log.Debug().Str("file", args[0]).Int("bytes", len(data)).Int("offset", offset).
			Int("start_line", startLine).Int("end_line", endLine).Msg("dump")
		output, err := hexout.Dump(data, settings, offset, startLine, endLine)
		cobra.CheckErr(err)
		if output != "" {
			fmt.Fprintln(cmd.OutOrStdout(), output)
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

func readInput(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed reading input: %w", err)
	}
	return data, nil
}
