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

// Package patterns recovers domain entities (tool names, metrics, dataset and
// task names) that statistical NER models systematically miss, by matching a
// fixed library of regular expressions against the raw text.
package patterns

import (
	"fmt"
	"io/ioutil"
	"regexp"
	"sort"
	"unicode/utf8"

	_ "embed"

	"gopkg.in/yaml.v2"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
)

// PatternConfidence is assigned to every pattern match. The library is hand
// curated and treated as high precision, so matches score above the model
// path's base heuristic but below a perfect 1.0.
const PatternConfidence = 0.85

//go:embed patterns.yml
var defaultLibraryYML []byte

// augmentOrder fixes the iteration order over pattern groups so Augment is
// deterministic. Types outside this list (from custom library files) run
// afterwards in lexical order.
var augmentOrder = []entity.Type{
	entity.Tech,
	entity.Method,
	entity.Dataset,
	entity.Metric,
	entity.Task,
}

type Library struct {
	Version int
	groups  map[entity.Type][]*regexp.Regexp
}

type libraryFile struct {
	Version  int                 `yaml:"version"`
	Patterns map[string][]string `yaml:"patterns"`
}

// Load reads and compiles a pattern library from a YAML file.
func Load(path string) (*Library, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

// Default returns the library compiled into the binary. It panics on a bad
// compile, which can only mean the embedded file itself is broken.
func Default() *Library {
	lib, err := parse(defaultLibraryYML)
	if err != nil {
		panic(err)
	}
	return lib
}

func parse(b []byte) (*Library, error) {
	var file libraryFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, err
	}

	lib := &Library{
		Version: file.Version,
		groups:  make(map[entity.Type][]*regexp.Regexp, len(file.Patterns)),
	}
	for name, uncompiled := range file.Patterns {
		for _, pattern := range uncompiled {
			re, err := regexp.Compile("(?i)" + pattern)
			if err != nil {
				return nil, fmt.Errorf("bad pattern for %s: %w", name, err)
			}
			lib.groups[entity.Type(name)] = append(lib.groups[entity.Type(name)], re)
		}
	}
	return lib, nil
}

// Augment matches every pattern in the library against text and returns one
// entity per non-overlapping match, each at PatternConfidence. Patterns are
// matched independently, so the same span can be emitted once per pattern
// that hits it - collapsing those is the merger's job, not ours.
func (l *Library) Augment(text, language string) []entity.Entity {
	var entities []entity.Entity
	for _, entityType := range l.types() {
		for _, re := range l.groups[entityType] {
			for _, match := range re.FindAllStringIndex(text, -1) {
				entities = append(entities, entity.Entity{
					Span: entity.Span{
						Text:     text[match[0]:match[1]],
						Start:    utf8.RuneCountInString(text[:match[0]]),
						End:      utf8.RuneCountInString(text[:match[1]]),
						Language: language,
					},
					Type:       entityType,
					Confidence: PatternConfidence,
				})
			}
		}
	}
	return entities
}

func (l *Library) types() []entity.Type {
	ordered := make([]entity.Type, 0, len(l.groups))
	seen := make(map[entity.Type]struct{}, len(l.groups))
	for _, t := range augmentOrder {
		if _, ok := l.groups[t]; ok {
			ordered = append(ordered, t)
			seen[t] = struct{}{}
		}
	}

	var extra []entity.Type
	for t := range l.groups {
		if _, ok := seen[t]; !ok {
			extra = append(extra, t)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(ordered, extra...)
}
