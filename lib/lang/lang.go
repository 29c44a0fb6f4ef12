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

// Package lang normalizes a language detector's ranked guesses into the
// canonical primary/alternatives structure with a manual-review decision.
package lang

import (
	"math"
)

// UnknownLanguage is the sentinel primary language when detection failed or
// found nothing we support.
const UnknownLanguage = "unknown"

// DefaultThreshold is the confidence below which a detection is flagged for
// manual review when the caller does not supply its own threshold.
const DefaultThreshold = 0.7

// languageMap collapses detector codes into canonical codes; both Chinese
// script variants fold into zh.
var languageMap = map[string]string{
	"en":    "en",
	"zh-cn": "zh",
	"zh-tw": "zh",
	"ja":    "ja",
	"ko":    "ko",
}

var supported = map[string]struct{}{
	"en": {},
	"zh": {},
	"ja": {},
	"ko": {},
}

// Guess is one entry of a detector's ranked output.
type Guess struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// Detection is the normalized detection result for one text.
type Detection struct {
	Language             string  `json:"language"`
	Confidence           float64 `json:"confidence"`
	RequiresManualReview bool    `json:"requiresManualReview"`
	Alternatives         []Guess `json:"alternatives"`
}

// Undetermined is the result for texts the detector could not classify:
// unknown language, zero confidence, flagged for manual review.
func Undetermined() Detection {
	return Detection{
		Language:             UnknownLanguage,
		Confidence:           0.0,
		RequiresManualReview: true,
		Alternatives:         []Guess{},
	}
}

// Normalize maps a detector's ranked guesses through the canonical language
// table, filters to the supported set and picks the first survivor as the
// primary language. The manual-review flag is set iff the primary confidence
// is below threshold; the remaining survivors become alternatives in their
// original ranked order. An empty or fully filtered list yields
// Undetermined.
func Normalize(raw []Guess, threshold float64) Detection {
	if len(raw) == 0 {
		return Undetermined()
	}

	surviving := make([]Guess, 0, len(raw))
	for _, guess := range raw {
		code, ok := languageMap[guess.Language]
		if !ok {
			code = guess.Language
		}
		if _, ok := supported[code]; !ok {
			continue
		}
		surviving = append(surviving, Guess{
			Language:   code,
			Confidence: round4(guess.Confidence),
		})
	}

	if len(surviving) == 0 {
		return Undetermined()
	}

	primary := surviving[0]
	return Detection{
		Language:             primary.Language,
		Confidence:           primary.Confidence,
		RequiresManualReview: primary.Confidence < threshold,
		Alternatives:         surviving[1:],
	}
}

// round4 keeps probabilities stable in serialized output.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
