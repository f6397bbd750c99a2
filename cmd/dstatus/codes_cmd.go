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

package main

import (
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/httpx"
	"dirpx.dev/dstatus/mapper"
	"dirpx.dev/dstatus/reason"
	"github.com/spf13/cobra"
)

func newCodesCommand(load func() (apis.Mapper, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the built-in domain codes with their gRPC and HTTP statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := load()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tGRPC\tHTTP")
			for _, c := range slices.Sorted(maps.Keys(mapper.Defaults())) {
				gc := m.Code(c, reason.Empty)
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c, mapper.CodeName(gc), httpx.StatusFromCode(gc))
			}
			return tw.Flush()
		},
	}
}
