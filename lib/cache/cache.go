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

// Package cache stores annotation results keyed by input, so repeated
// requests for the same document skip the NER backend entirely.
package cache

import (
	"crypto/sha1"
	"fmt"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
)

// Result is the cached annotation payload for one (text, language, model)
// input.
type Result struct {
	Entities []entity.Entity `json:"entities"`
}

// Type selects the shared cache backend.
type Type string

const (
	None          Type = "none"
	Redis         Type = "redis"
	Elasticsearch Type = "elasticsearch"
)

// Key derives the storage key for an annotation request. The text is hashed
// so arbitrarily large documents produce fixed-size keys; language and model
// stay readable for operability.
func Key(text, language, model string) string {
	return fmt.Sprintf("annotation:%s:%s:%x", language, model, sha1.Sum([]byte(text)))
}
