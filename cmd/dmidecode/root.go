// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yywing/go-dmi/internal/config"
	dmilog "github.com/yywing/go-dmi/internal/log"
	"github.com/yywing/go-dmi/smbios"
	"gopkg.in/yaml.v3"
)

// streamFunc opens the host SMBIOS table without going through sysfs.
type streamFunc func() (io.ReadSeekCloser, smbios.EntryPoint, error)

// RootCmd holds the root cmd flags and the state resolved when it runs.
type RootCmd struct {
	*Flags

	fs     afero.Fs
	v      *viper.Viper
	stream streamFunc

	cfg *config.Config
	log logrus.FieldLogger
	out io.Writer
}

// NewRootCmd returns a new root command reading from fs
func NewRootCmd(fs afero.Fs) *cobra.Command {
	return newRootCmd(fs, smbios.Stream)
}

func newRootCmd(fs afero.Fs, stream streamFunc) *cobra.Command {
	cmd := &RootCmd{
		fs:     fs,
		v:      viper.New(),
		stream: stream,
	}
	rootCmd := &cobra.Command{
		Use:           "dmidecode",
		Short:         "Decodes and prints system information from the SMBIOS",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          cmd.Run,
	}

	cmd.Flags = SetFlags(rootCmd.Flags())
	rootCmd.MarkFlagsMutuallyExclusive("zero", "table")
	rootCmd.MarkFlagsMutuallyExclusive("zero", "entrypoint")

	return rootCmd
}

// Execute runs the root command against the host filesystem.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCmd(afero.NewOsFs())

	err := rootCmd.Execute()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// Run runs the command logic
func (cmd *RootCmd) Run(c *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.v, c.Flags())
	if err != nil {
		return err
	}

	style, err := dmilog.ParseStyle(cfg.LogStyle)
	if err != nil {
		return err
	}
	logger, err := dmilog.New(dmilog.Options{
		Level: cfg.LogLevel,
		Style: style,
		Debug: cfg.Debug,
		Out:   c.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	cmd.cfg = cfg
	cmd.log = logger
	cmd.out = c.OutOrStdout()

	switch {
	case cmd.Zero:
		return cmd.runZero()
	case cmd.EntryPoint:
		return cmd.runEntryPoint()
	case c.Flags().Changed("table"):
		return cmd.runTable(cmd.Table)
	case cmd.Raw:
		return cmd.runRaw()
	default:
		return cmd.runIDs()
	}
}

// print writes v as YAML, or calls text when the output format is text.
func (cmd *RootCmd) print(v interface{}, text func(io.Writer) error) error {
	if cmd.cfg.Output != config.OutputYAML {
		return text(cmd.out)
	}

	enc := yaml.NewEncoder(cmd.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode output")
	}

	return enc.Close()
}
