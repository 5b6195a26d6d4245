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

package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestreldb/kestrel/pkg/core/joins"
)

func TestJoinDescReverse(t *testing.T) {
	a := require.New(t)
	d := JoinDesc{
		Kind:           joins.LeftJoin,
		Strictness:     joins.StrictnessAsof,
		Locality:       joins.LocalityGlobal,
		ASOFInequality: joins.ASOFInequalityLess,
		Algorithm:      joins.JoinAlgorithmHash,
		BuildSide:      joins.RightSide,
	}
	r := d.Reverse()
	a.Equal(joins.RightJoin, r.Kind)
	a.Equal(joins.ASOFInequalityGreater, r.ASOFInequality)
	a.Equal(joins.LeftSide, r.BuildSide)
	// strictness, locality and algorithm are viewpoint-independent
	a.Equal(d.Strictness, r.Strictness)
	a.Equal(d.Locality, r.Locality)
	a.Equal(d.Algorithm, r.Algorithm)
	a.Equal(d, r.Reverse())
}

func TestResolveStrictness(t *testing.T) {
	a := require.New(t)

	s, err := ResolveStrictness(joins.InnerJoin, joins.StrictnessAny, DefaultStrictness)
	a.NoError(err)
	a.Equal(joins.StrictnessAny, s)

	s, err = ResolveStrictness(joins.LeftJoin, joins.StrictnessUnspecified, DefaultStrictness)
	a.NoError(err)
	a.Equal(joins.StrictnessAll, s)

	s, err = ResolveStrictness(joins.CrossJoin, joins.StrictnessUnspecified, DefaultStrictness)
	a.NoError(err)
	a.Equal(joins.StrictnessUnspecified, s)

	s, err = ResolveStrictness(joins.PasteJoin, joins.StrictnessUnspecified, DefaultStrictness)
	a.NoError(err)
	a.Equal(joins.StrictnessUnspecified, s)

	_, err = ResolveStrictness(joins.InnerJoin, joins.StrictnessUnspecified, joins.StrictnessUnspecified)
	a.ErrorContains(err, "expected ANY or ALL")
}

func TestCheckJoinDescAsof(t *testing.T) {
	a := require.New(t)

	ok := JoinDesc{
		Kind:           joins.InnerJoin,
		Strictness:     joins.StrictnessAsof,
		ASOFInequality: joins.ASOFInequalityGreaterOrEquals,
	}
	a.NoError(CheckJoinDesc(ok))
	ok.Kind = joins.LeftJoin
	a.NoError(CheckJoinDesc(ok))

	bad := ok
	bad.Kind = joins.RightJoin
	a.ErrorContains(CheckJoinDesc(bad), "ASOF join is supported only for INNER and LEFT")
	bad.Kind = joins.FullJoin
	a.ErrorContains(CheckJoinDesc(bad), "ASOF join is supported only for INNER and LEFT")

	bad = ok
	bad.ASOFInequality = joins.ASOFInequalityNone
	a.ErrorContains(CheckJoinDesc(bad), "requires an inequality")

	bad = ok
	bad.Strictness = joins.StrictnessAll
	a.ErrorContains(CheckJoinDesc(bad), "requires ASOF strictness")
}

func TestCheckJoinDescSemiAnti(t *testing.T) {
	a := require.New(t)
	for _, s := range []joins.JoinStrictness{joins.StrictnessSemi, joins.StrictnessAnti} {
		a.NoError(CheckJoinDesc(JoinDesc{Kind: joins.LeftJoin, Strictness: s}))
		a.NoError(CheckJoinDesc(JoinDesc{Kind: joins.RightJoin, Strictness: s}))
		err := CheckJoinDesc(JoinDesc{Kind: joins.InnerJoin, Strictness: s})
		a.ErrorContains(err, "supported only for LEFT and RIGHT")
	}
}

func TestCheckJoinDescCrossLike(t *testing.T) {
	a := require.New(t)
	for _, k := range []joins.JoinKind{joins.CrossJoin, joins.CommaJoin, joins.PasteJoin} {
		a.NoError(CheckJoinDesc(JoinDesc{Kind: k}))
		err := CheckJoinDesc(JoinDesc{Kind: k, Strictness: joins.StrictnessAll})
		a.ErrorContains(err, "does not take a strictness")
	}
}

func TestExpandAlgorithm(t *testing.T) {
	a := require.New(t)
	a.Equal(
		[]joins.JoinAlgorithm{joins.JoinAlgorithmDirect, joins.JoinAlgorithmHash},
		ExpandAlgorithm(joins.JoinAlgorithmDefault))
	a.Equal([]joins.JoinAlgorithm{joins.JoinAlgorithmGraceHash}, ExpandAlgorithm(joins.JoinAlgorithmGraceHash))
}
