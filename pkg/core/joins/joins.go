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

// Package joins defines the join semantics taxonomy shared by the planner,
// the optimizer and the distributed executor. Values are plain tags: they are
// created during query analysis, travel unchanged through planning (except
// for explicit reversal when operand order is swapped) and are shipped inside
// serialized plan fragments. All operations here are pure and safe for
// concurrent use.
package joins

import "fmt"

// JoinKind defines which side of the JOIN is preserved in the result.
type JoinKind uint8

const (
	// InnerJoin keeps only joined rows.
	InnerJoin JoinKind = iota
	// LeftJoin keeps all rows from the left table, filling the right side
	// with default values where there is no match.
	LeftJoin
	// RightJoin keeps all rows from the right table, filling the left side
	// with default values where there is no match.
	RightJoin
	// FullJoin keeps all rows from both tables.
	FullJoin
	// CrossJoin is the direct product. Strictness and condition don't matter.
	CrossJoin
	// CommaJoin is the same as the direct product. Intended to be converted
	// to an inner join with conditions taken from WHERE.
	CommaJoin
	// PasteJoin stacks columns from the left and right tables side by side,
	// no key matching happens at all.
	PasteJoin

	joinKindCount
)

func (k JoinKind) IsLeft() bool  { return k == LeftJoin }
func (k JoinKind) IsRight() bool { return k == RightJoin }
func (k JoinKind) IsInner() bool { return k == InnerJoin }
func (k JoinKind) IsFull() bool  { return k == FullJoin }
func (k JoinKind) IsPaste() bool { return k == PasteJoin }

// IsOuter reports whether unmatched rows of some side survive and need
// default-value padding.
func (k JoinKind) IsOuter() bool {
	return k == LeftJoin || k == RightJoin || k == FullJoin
}

// IsCrossOrComma reports whether the join condition and strictness are
// ignored entirely.
func (k JoinKind) IsCrossOrComma() bool { return k == CrossJoin || k == CommaJoin }

// IsRightOrFull reports whether unmatched left rows need null padding.
func (k JoinKind) IsRightOrFull() bool { return k == RightJoin || k == FullJoin }

// IsLeftOrFull reports whether unmatched right rows need null padding.
func (k JoinKind) IsLeftOrFull() bool { return k == LeftJoin || k == FullJoin }

// IsInnerOrRight reports whether unmatched left rows can be dropped.
func (k JoinKind) IsInnerOrRight() bool { return k == InnerJoin || k == RightJoin }

// IsInnerOrLeft reports whether unmatched right rows can be dropped.
func (k JoinKind) IsInnerOrLeft() bool { return k == InnerJoin || k == LeftJoin }

// Reverse re-expresses the kind after the physical left/right operands have
// been swapped, e.g. when the optimizer picks the smaller side as the hash
// build side. It is its own inverse.
func (k JoinKind) Reverse() JoinKind {
	switch k {
	case LeftJoin:
		return RightJoin
	case RightJoin:
		return LeftJoin
	default:
		return k
	}
}

func (k JoinKind) String() string {
	switch k {
	case InnerJoin:
		return "Inner"
	case LeftJoin:
		return "Left"
	case RightJoin:
		return "Right"
	case FullJoin:
		return "Full"
	case CrossJoin:
		return "Cross"
	case CommaJoin:
		return "Comma"
	case PasteJoin:
		return "Paste"
	}
	return fmt.Sprintf("Invalid JoinKind(%d)", uint8(k))
}

// JoinStrictness is the policy for resolving multiple matching rows on one
// side. Allows a more optimal JOIN for typical cases.
type JoinStrictness uint8

const (
	// StrictnessUnspecified is resolved later by the planner defaults.
	StrictnessUnspecified JoinStrictness = iota
	// StrictnessRightAny is the old ANY JOIN. If there are many suitable rows
	// in the right table, use any one of them.
	StrictnessRightAny
	// StrictnessAny is a semi join with any value from the filtering table.
	// For LEFT JOIN, Any and RightAny are the same.
	StrictnessAny
	// StrictnessAll replicates left rows for every suitable right row, the
	// usual JOIN semantic.
	StrictnessAll
	// StrictnessAsof picks the nearest value for the last join column.
	StrictnessAsof
	// StrictnessSemi filters one table by key existence in the other.
	// LEFT or RIGHT only.
	StrictnessSemi
	// StrictnessAnti is the same as semi but filters by key absence.
	// LEFT or RIGHT only.
	StrictnessAnti

	joinStrictnessCount
)

func (s JoinStrictness) String() string {
	switch s {
	case StrictnessUnspecified:
		return "Unspecified"
	case StrictnessRightAny:
		return "RightAny"
	case StrictnessAny:
		return "Any"
	case StrictnessAll:
		return "All"
	case StrictnessAsof:
		return "Asof"
	case StrictnessSemi:
		return "Semi"
	case StrictnessAnti:
		return "Anti"
	}
	return fmt.Sprintf("Invalid JoinStrictness(%d)", uint8(s))
}

// JoinLocality selects the distributed execution mode of a JOIN.
type JoinLocality uint8

const (
	// LocalityUnspecified is resolved to Local or Global by the optimizer
	// from cluster topology.
	LocalityUnspecified JoinLocality = iota
	// LocalityLocal joins only data available on the same server
	// (co-located shards).
	LocalityLocal
	// LocalityGlobal collects data from remote servers and broadcasts it to
	// every server.
	LocalityGlobal

	joinLocalityCount
)

func (l JoinLocality) String() string {
	switch l {
	case LocalityUnspecified:
		return "Unspecified"
	case LocalityLocal:
		return "Local"
	case LocalityGlobal:
		return "Global"
	}
	return fmt.Sprintf("Invalid JoinLocality(%d)", uint8(l))
}

// ASOFJoinInequality is the comparison operator applied to the last
// (temporal) join key of an ASOF join. None means the predicate is not an
// ASOF predicate.
type ASOFJoinInequality uint8

const (
	ASOFInequalityNone ASOFJoinInequality = iota
	ASOFInequalityLess
	ASOFInequalityGreater
	ASOFInequalityLessOrEquals
	ASOFInequalityGreaterOrEquals

	asofJoinInequalityCount
)

// GetASOFJoinInequality maps a comparison function name to the ASOF
// inequality it denotes. Unrecognized names (including "") yield None; that
// is a recognition outcome, not an error.
func GetASOFJoinInequality(funcName string) ASOFJoinInequality {
	switch funcName {
	case "less":
		return ASOFInequalityLess
	case "greater":
		return ASOFInequalityGreater
	case "lessOrEquals":
		return ASOFInequalityLessOrEquals
	case "greaterOrEquals":
		return ASOFInequalityGreaterOrEquals
	}
	return ASOFInequalityNone
}

// Reverse flips the inequality for the case when the two compared operands
// are swapped during operand reordering. It is its own inverse.
func (i ASOFJoinInequality) Reverse() ASOFJoinInequality {
	switch i {
	case ASOFInequalityLess:
		return ASOFInequalityGreater
	case ASOFInequalityGreater:
		return ASOFInequalityLess
	case ASOFInequalityLessOrEquals:
		return ASOFInequalityGreaterOrEquals
	case ASOFInequalityGreaterOrEquals:
		return ASOFInequalityLessOrEquals
	}
	return ASOFInequalityNone
}

func (i ASOFJoinInequality) String() string {
	switch i {
	case ASOFInequalityNone:
		return "None"
	case ASOFInequalityLess:
		return "Less"
	case ASOFInequalityGreater:
		return "Greater"
	case ASOFInequalityLessOrEquals:
		return "LessOrEquals"
	case ASOFInequalityGreaterOrEquals:
		return "GreaterOrEquals"
	}
	return fmt.Sprintf("Invalid ASOFJoinInequality(%d)", uint8(i))
}

// JoinAlgorithm names the physical strategy chosen to execute a logical join.
type JoinAlgorithm uint8

const (
	// JoinAlgorithmDefault is deprecated, the planner reads it as
	// "direct,hash".
	JoinAlgorithmDefault JoinAlgorithm = iota
	JoinAlgorithmAuto
	JoinAlgorithmHash
	JoinAlgorithmPartialMerge
	JoinAlgorithmPreferPartialMerge
	JoinAlgorithmParallelHash
	JoinAlgorithmGraceHash
	JoinAlgorithmDirect
	JoinAlgorithmFullSortingMerge

	joinAlgorithmCount
)

func (a JoinAlgorithm) String() string {
	switch a {
	case JoinAlgorithmDefault:
		return "default"
	case JoinAlgorithmAuto:
		return "auto"
	case JoinAlgorithmHash:
		return "hash"
	case JoinAlgorithmPartialMerge:
		return "partial_merge"
	case JoinAlgorithmPreferPartialMerge:
		return "prefer_partial_merge"
	case JoinAlgorithmParallelHash:
		return "parallel_hash"
	case JoinAlgorithmGraceHash:
		return "grace_hash"
	case JoinAlgorithmDirect:
		return "direct"
	case JoinAlgorithmFullSortingMerge:
		return "full_sorting_merge"
	}
	return fmt.Sprintf("Invalid JoinAlgorithm(%d)", uint8(a))
}

// JoinTableSide tags which operand relation a column or condition belongs to.
type JoinTableSide uint8

const (
	LeftSide JoinTableSide = iota
	RightSide

	joinTableSideCount
)

// Opposite returns the other operand side.
func (s JoinTableSide) Opposite() JoinTableSide {
	if s == LeftSide {
		return RightSide
	}
	return LeftSide
}

func (s JoinTableSide) String() string {
	switch s {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	}
	return fmt.Sprintf("Invalid JoinTableSide(%d)", uint8(s))
}
