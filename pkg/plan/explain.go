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

package plan

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Explain renders the fragment as a property table for diagnostics and the
// planctl CLI.
func (f *JoinFragment) Explain(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"property", "value"})
	table.Append([]string{"kind", f.Desc.Kind.String()})
	table.Append([]string{"strictness", f.Desc.Strictness.String()})
	table.Append([]string{"locality", f.Desc.Locality.String()})
	table.Append([]string{"asof inequality", f.Desc.ASOFInequality.String()})
	table.Append([]string{"algorithm", f.Desc.Algorithm.String()})
	table.Append([]string{"build side", f.Desc.BuildSide.String()})
	table.Append([]string{"left keys", strings.Join(f.LeftKeys, ", ")})
	table.Append([]string{"right keys", strings.Join(f.RightKeys, ", ")})
	table.Render()
}
