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

// Package planner holds the planning-side rules over the join taxonomy:
// filling in defaults the analyzer left unspecified, checking cross-type
// coherence, and re-expressing a join when the optimizer swaps operand order.
package planner

import (
	"github.com/pingcap/errors"

	"github.com/kestreldb/kestrel/pkg/core/joins"
)

// DefaultStrictness is used for joins whose query text carries neither ANY
// nor ALL, unless the session overrides it.
const DefaultStrictness = joins.StrictnessAll

// JoinDesc is the full semantic description of one join node as seen by the
// optimizer: what to keep, how to resolve multiple matches, where to run it
// and how. It is a plain value, copied freely between rules.
type JoinDesc struct {
	Kind           joins.JoinKind
	Strictness     joins.JoinStrictness
	Locality       joins.JoinLocality
	ASOFInequality joins.ASOFJoinInequality
	Algorithm      joins.JoinAlgorithm
	BuildSide      joins.JoinTableSide
}

// Reverse re-expresses the join after the physical operands have been
// swapped, e.g. when the optimizer moves the smaller relation to the build
// side. Involution: d.Reverse().Reverse() == d.
func (d JoinDesc) Reverse() JoinDesc {
	d.Kind = d.Kind.Reverse()
	d.ASOFInequality = d.ASOFInequality.Reverse()
	d.BuildSide = d.BuildSide.Opposite()
	return d
}

// ResolveStrictness replaces StrictnessUnspecified with the session default.
// Cross, comma and paste joins ignore strictness and keep it unspecified.
func ResolveStrictness(kind joins.JoinKind, strictness, def joins.JoinStrictness) (joins.JoinStrictness, error) {
	if strictness != joins.StrictnessUnspecified {
		return strictness, nil
	}
	if kind.IsCrossOrComma() || kind.IsPaste() {
		return joins.StrictnessUnspecified, nil
	}
	if def == joins.StrictnessUnspecified {
		return strictness, errors.New("expected ANY or ALL in JOIN section, because the default join strictness is empty")
	}
	return def, nil
}

// CheckJoinDesc validates the cross-type invariants the taxonomy values
// cannot express on their own. The descriptor is expected to have its
// strictness resolved already.
func CheckJoinDesc(d JoinDesc) error {
	switch d.Strictness {
	case joins.StrictnessAsof:
		if !d.Kind.IsInnerOrLeft() {
			return errors.Errorf("ASOF join is supported only for INNER and LEFT, got %s", d.Kind)
		}
		if d.ASOFInequality == joins.ASOFInequalityNone {
			return errors.Errorf("ASOF %s join requires an inequality on the last join key", d.Kind)
		}
	case joins.StrictnessSemi, joins.StrictnessAnti:
		if !d.Kind.IsLeft() && !d.Kind.IsRight() {
			return errors.Errorf("%s join is supported only for LEFT and RIGHT, got %s", d.Strictness, d.Kind)
		}
	}
	if d.Strictness != joins.StrictnessAsof && d.ASOFInequality != joins.ASOFInequalityNone {
		return errors.Errorf("inequality %s on the last join key requires ASOF strictness, got %s", d.ASOFInequality, d.Strictness)
	}
	if (d.Kind.IsCrossOrComma() || d.Kind.IsPaste()) && d.Strictness != joins.StrictnessUnspecified {
		return errors.Errorf("%s join does not take a strictness, got %s", d.Kind, d.Strictness)
	}
	return nil
}

// ExpandAlgorithm translates a requested algorithm into the ordered list of
// strategies the executor will try. JoinAlgorithmDefault is a deprecated
// alias for "direct,hash".
func ExpandAlgorithm(a joins.JoinAlgorithm) []joins.JoinAlgorithm {
	if a == joins.JoinAlgorithmDefault {
		return []joins.JoinAlgorithm{joins.JoinAlgorithmDirect, joins.JoinAlgorithmHash}
	}
	return []joins.JoinAlgorithm{a}
}
