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

// Package merge combines model-derived and pattern-derived entities into one
// duplicate-free, order-stable result set.
package merge

import (
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/text"
)

type key struct {
	text       string
	entityType entity.Type
}

// Merge concatenates modelEntities then patternEntities and drops every
// entity whose (folded text, type) key has been seen before. Model entities
// go first on purpose: the model path is primary, so when a pattern finds
// the same surface form the model's entity (and its confidence) wins.
//
// Offsets are deliberately not part of the key - the same term reported at
// two positions collapses to its first occurrence. No fuzzy or overlap
// merging happens here: "GPT-3" and "GPT-3 model" stay distinct entities.
// The result preserves first-seen order and the function is pure, so merging
// the same inputs twice yields the same output.
func Merge(modelEntities, patternEntities []entity.Entity) []entity.Entity {
	merged := make([]entity.Entity, 0, len(modelEntities)+len(patternEntities))
	seen := make(map[key]struct{}, len(modelEntities)+len(patternEntities))

	keep := func(e entity.Entity) {
		k := key{text: text.NormalizeKey(e.Text), entityType: e.Type}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		merged = append(merged, e)
	}

	for _, e := range modelEntities {
		keep(e)
	}
	for _, e := range patternEntities {
		keep(e)
	}

	return merged
}
