/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package entity defines the canonical annotation schema: spans, typed
// entities and the mapping/scoring rules that turn a model's raw output
// into it.
package entity

// Type is one of the canonical entity categories. The set is closed; any
// other value leaked through the label mapper came from an unmapped native
// label (see MapLabel).
type Type string

const (
	Person  Type = "PERSON"
	Org     Type = "ORG"
	Tech    Type = "TECH"
	Method  Type = "METHOD"
	Dataset Type = "DATASET"
	Metric  Type = "METRIC"
	Task    Type = "TASK"
)

var canonicalTypes = map[Type]struct{}{
	Person:  {},
	Org:     {},
	Tech:    {},
	Method:  {},
	Dataset: {},
	Metric:  {},
	Task:    {},
}

// Known reports whether t belongs to the canonical set.
func (t Type) Known() bool {
	_, ok := canonicalTypes[t]
	return ok
}

// Span is a contiguous character range in the source text. Offsets are rune
// based and half open, so Text covers runes [Start, End) of the original.
type Span struct {
	Text     string `json:"text"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Language string `json:"language"`
}

// Covers reports whether the span's offsets index original correctly:
// 0 <= Start < End <= len(original) and the covered runes equal Text.
func (s Span) Covers(original string) bool {
	runes := []rune(original)
	if s.Start < 0 || s.Start >= s.End || s.End > len(runes) {
		return false
	}
	return string(runes[s.Start:s.End]) == s.Text
}

// Entity is a span plus its canonical type and a confidence in [0, 1].
// Entities are value objects - once built they are never mutated.
type Entity struct {
	Span
	Type       Type    `json:"type"`
	Confidence float64 `json:"confidence"`
}
