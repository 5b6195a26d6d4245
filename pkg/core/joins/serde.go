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

package joins

import (
	"io"

	"github.com/pingcap/errors"
)

// Wire format: every taxonomy value travels as a single byte equal to its
// declared ordinal. Renumbering or removing a variant is a breaking wire
// change. A byte outside [0, variantCount) means the peer speaks a different
// protocol version; it must fail decoding, never degrade to some default
// variant.

func serializeTag(w io.Writer, code uint8) error {
	_, err := w.Write([]byte{code})
	return errors.Trace(err)
}

func deserializeTag(r io.Reader, name string, count uint8) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, errors.Annotatef(err, "reading %s", name)
	}
	if buf[0] >= count {
		return 0, errors.Errorf("invalid %s code %d on wire, max is %d", name, buf[0], count-1)
	}
	return buf[0], nil
}

func SerializeJoinKind(k JoinKind, w io.Writer) error {
	return serializeTag(w, uint8(k))
}

func DeserializeJoinKind(r io.Reader) (JoinKind, error) {
	code, err := deserializeTag(r, "JoinKind", uint8(joinKindCount))
	return JoinKind(code), errors.Trace(err)
}

func SerializeJoinStrictness(s JoinStrictness, w io.Writer) error {
	return serializeTag(w, uint8(s))
}

func DeserializeJoinStrictness(r io.Reader) (JoinStrictness, error) {
	code, err := deserializeTag(r, "JoinStrictness", uint8(joinStrictnessCount))
	return JoinStrictness(code), errors.Trace(err)
}

func SerializeJoinLocality(l JoinLocality, w io.Writer) error {
	return serializeTag(w, uint8(l))
}

func DeserializeJoinLocality(r io.Reader) (JoinLocality, error) {
	code, err := deserializeTag(r, "JoinLocality", uint8(joinLocalityCount))
	return JoinLocality(code), errors.Trace(err)
}

func SerializeASOFJoinInequality(i ASOFJoinInequality, w io.Writer) error {
	return serializeTag(w, uint8(i))
}

func DeserializeASOFJoinInequality(r io.Reader) (ASOFJoinInequality, error) {
	code, err := deserializeTag(r, "ASOFJoinInequality", uint8(asofJoinInequalityCount))
	return ASOFJoinInequality(code), errors.Trace(err)
}

func SerializeJoinAlgorithm(a JoinAlgorithm, w io.Writer) error {
	return serializeTag(w, uint8(a))
}

func DeserializeJoinAlgorithm(r io.Reader) (JoinAlgorithm, error) {
	code, err := deserializeTag(r, "JoinAlgorithm", uint8(joinAlgorithmCount))
	return JoinAlgorithm(code), errors.Trace(err)
}

func SerializeJoinTableSide(s JoinTableSide, w io.Writer) error {
	return serializeTag(w, uint8(s))
}

func DeserializeJoinTableSide(r io.Reader) (JoinTableSide, error) {
	code, err := deserializeTag(r, "JoinTableSide", uint8(joinTableSideCount))
	return JoinTableSide(code), errors.Trace(err)
}
