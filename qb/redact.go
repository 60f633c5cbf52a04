// Copyright 2025 Gel Data Inc. and the contributors.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package qb

import (
	"encoding/base32"
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
	"github.com/google/uuid"
)

// Redacted query text replaces every literal with a hash of its
// value, so two queries that differ only in literal content produce
// the same redacted text for the same inputs and different text for
// different inputs. The siphash keys are fixed ASCII ("edgeql-q",
// "b-redact") to keep the output stable across processes.
const (
	redactK0 = 0x65646765716c2d71
	redactK1 = 0x622d726564616374
)

func redactSum(b []byte) uint64 {
	return siphash.Hash(redactK0, redactK1, b)
}

func redactInt(v int64) int64 {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return int64(redactSum(b[:]))
}

func redactFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		// non-finite values carry no payload, keep them
		return v
	}
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(v))
	// take the top 53 bits so the result lands in [0, 1) and still
	// reads as an ordinary float literal
	return float64(redactSum(b[:])>>11) / float64(1<<53)
}

func redactString(s string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], redactSum([]byte(s)))
	return base32.StdEncoding.EncodeToString(b[:])
}

func redactBytes(b []byte) int64 {
	return int64(redactSum(b))
}

func redactUUID(u uuid.UUID) uuid.UUID {
	var out uuid.UUID
	binary.BigEndian.PutUint64(out[:8], redactSum(u[:8]))
	binary.BigEndian.PutUint64(out[8:], redactSum(u[8:]))
	return out
}
