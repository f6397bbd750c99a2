/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command dstatus inspects code tables: how domain failures map to gRPC and
// HTTP statuses before any translator runs.
//
//	dstatus explain quota_exceeded billing.quota.storage --rules rules.yaml
//	dstatus codes --rules rules.yaml
package main

import (
	"fmt"
	"os"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/mapper"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dstatus:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var rulesPath string
	cmd := &cobra.Command{
		Use:           "dstatus",
		Short:         "Inspect how domain failure codes map to gRPC and HTTP statuses",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "YAML code table applied on top of the built-in defaults")

	load := func() (apis.Mapper, error) { return loadMapper(rulesPath) }
	cmd.AddCommand(newExplainCommand(load), newCodesCommand(load))
	return cmd
}

// loadMapper builds the mapper described by the rules file at path, or the
// default mapper when path is empty.
func loadMapper(path string) (apis.Mapper, error) {
	if path == "" {
		return mapper.New()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules: %w", err)
	}
	defer f.Close()

	cfg, err := mapper.LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := mapper.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
