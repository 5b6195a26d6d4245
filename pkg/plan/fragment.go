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

// Package plan carries join plan fragments between nodes. A fragment computed
// on the initiator must execute with bit-identical semantics on the remote
// peer, so every taxonomy value travels as its frozen one-byte wire code and
// anything unrecognized aborts decoding instead of degrading to a default.
package plan

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/golang/snappy"
	"github.com/pingcap/errors"
	"github.com/sirupsen/logrus"

	"github.com/kestreldb/kestrel/pkg/core/joins"
	"github.com/kestreldb/kestrel/pkg/planner"
)

// FragmentFormatVersion is bumped whenever the fragment layout changes.
const FragmentFormatVersion byte = 1

// Key name payloads are tiny in practice; anything bigger than this is a
// corrupted or hostile length prefix.
const maxKeyPayloadSize = 16 << 20

// JoinFragment is the join node descriptor shipped to a remote executor: the
// semantic description plus the join key columns of both operands.
type JoinFragment struct {
	Desc      planner.JoinDesc
	LeftKeys  []string
	RightKeys []string
}

// Encode writes the fragment: format version, the six taxonomy bytes, then
// the snappy-compressed key lists with a uvarint length prefix.
func (f *JoinFragment) Encode(w io.Writer) error {
	if _, err := w.Write([]byte{FragmentFormatVersion}); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeJoinKind(f.Desc.Kind, w); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeJoinStrictness(f.Desc.Strictness, w); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeJoinLocality(f.Desc.Locality, w); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeASOFJoinInequality(f.Desc.ASOFInequality, w); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeJoinAlgorithm(f.Desc.Algorithm, w); err != nil {
		return errors.Trace(err)
	}
	if err := joins.SerializeJoinTableSide(f.Desc.BuildSide, w); err != nil {
		return errors.Trace(err)
	}

	payload := appendKeys(nil, f.LeftKeys)
	payload = appendKeys(payload, f.RightKeys)
	compressed := snappy.Encode(nil, payload)

	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(compressed)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return errors.Trace(err)
	}
	_, err := w.Write(compressed)
	return errors.Trace(err)
}

// DecodeFragment reads one fragment and validates both the wire codes and
// the cross-type join semantics, so a malformed or version-skewed peer is
// rejected before the executor ever sees the join.
func DecodeFragment(r io.Reader) (*JoinFragment, error) {
	br := bufio.NewReader(r)

	ver, err := br.ReadByte()
	if err != nil {
		return nil, decodeFailed("io", errors.Annotate(err, "reading join fragment version"))
	}
	if ver != FragmentFormatVersion {
		return nil, decodeFailed("version",
			errors.Errorf("unsupported join fragment version %d, expected %d", ver, FragmentFormatVersion))
	}

	f := &JoinFragment{}
	if f.Desc.Kind, err = joins.DeserializeJoinKind(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if f.Desc.Strictness, err = joins.DeserializeJoinStrictness(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if f.Desc.Locality, err = joins.DeserializeJoinLocality(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if f.Desc.ASOFInequality, err = joins.DeserializeASOFJoinInequality(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if f.Desc.Algorithm, err = joins.DeserializeJoinAlgorithm(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if f.Desc.BuildSide, err = joins.DeserializeJoinTableSide(br); err != nil {
		return nil, decodeFailed("taxonomy", err)
	}
	if err := planner.CheckJoinDesc(f.Desc); err != nil {
		return nil, decodeFailed("semantics", err)
	}
	if f.Desc.Algorithm == joins.JoinAlgorithmDefault {
		logrus.Warnf("join fragment carries deprecated algorithm %q, executor will try direct then hash", f.Desc.Algorithm)
	}

	size, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, decodeFailed("io", errors.Annotate(err, "reading join key payload size"))
	}
	if size > maxKeyPayloadSize {
		return nil, decodeFailed("payload", errors.Errorf("join key payload size %d exceeds limit", size))
	}
	compressed := make([]byte, size)
	if _, err := io.ReadFull(br, compressed); err != nil {
		return nil, decodeFailed("io", errors.Annotate(err, "reading join key payload"))
	}
	decodedLen, err := snappy.DecodedLen(compressed)
	if err != nil {
		return nil, decodeFailed("payload", errors.Annotate(err, "reading join key payload header"))
	}
	if decodedLen > maxKeyPayloadSize {
		return nil, decodeFailed("payload", errors.Errorf("join key payload declares %d decoded bytes, exceeds limit", decodedLen))
	}
	payload, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, decodeFailed("payload", errors.Annotate(err, "decompressing join key payload"))
	}

	var rest []byte
	if f.LeftKeys, rest, err = readKeys(payload); err != nil {
		return nil, decodeFailed("payload", err)
	}
	if f.RightKeys, rest, err = readKeys(rest); err != nil {
		return nil, decodeFailed("payload", err)
	}
	if len(rest) != 0 {
		return nil, decodeFailed("payload", errors.Errorf("%d trailing bytes after join key payload", len(rest)))
	}
	return f, nil
}

func decodeFailed(cause string, err error) error {
	fragmentDecodeErrors.WithLabelValues(cause).Inc()
	return errors.Trace(err)
}

func appendKeys(b []byte, keys []string) []byte {
	b = binary.AppendUvarint(b, uint64(len(keys)))
	for _, k := range keys {
		b = binary.AppendUvarint(b, uint64(len(k)))
		b = append(b, k...)
	}
	return b
}

func readKeys(b []byte) ([]string, []byte, error) {
	count, n := binary.Uvarint(b)
	if n <= 0 {
		return nil, nil, errors.New("corrupted join key count")
	}
	b = b[n:]
	// every key needs at least its one-byte length prefix, so a count beyond
	// the remaining payload is forged; check before sizing the slice
	if count > uint64(len(b)) {
		return nil, nil, errors.Errorf("join key count %d exceeds remaining payload of %d bytes", count, len(b))
	}
	if count == 0 {
		return nil, b, nil
	}
	keys := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		size, n := binary.Uvarint(b)
		if n <= 0 || uint64(len(b)-n) < size {
			return nil, nil, errors.Errorf("corrupted join key %d of %d", i, count)
		}
		b = b[n:]
		keys = append(keys, string(b[:size]))
		b = b[size:]
	}
	return keys, b, nil
}
