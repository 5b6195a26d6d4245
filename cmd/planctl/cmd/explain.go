// Copyright 2025 The Kestrel Authors.
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

package cmd

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kestreldb/kestrel/pkg/plan"
)

var (
	fromFile bool

	explainCmd = &cobra.Command{
		Use:   "explain <hex-fragment>",
		Short: "Decode a join plan fragment and print its semantics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readFragment(args[0])
			if err != nil {
				return err
			}
			fragment, err := plan.DecodeFragment(bytes.NewReader(raw))
			if err != nil {
				return fmt.Errorf("decode join fragment: %v", err)
			}
			fragment.Explain(cmd.OutOrStdout())
			return nil
		},
	}
)

func readFragment(arg string) ([]byte, error) {
	if fromFile {
		return os.ReadFile(arg)
	}
	return hex.DecodeString(strings.TrimSpace(arg))
}

func init() {
	explainCmd.Flags().BoolVar(&fromFile, "file", false, "treat the argument as a path to a raw fragment file instead of a hex string")
}
