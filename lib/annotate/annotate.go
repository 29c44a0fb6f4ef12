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

// Package annotate wires the entity pipeline together: a black-box NER
// backend supplies raw spans, which are label-mapped and scored, augmented
// with pattern matches from the raw text, merged, and optionally filtered
// through a blocklist.
package annotate

import (
	"context"

	"github.com/rs/zerolog/log"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/gen/pb"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/blocklist"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/entity"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/merge"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/patterns"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/recogniser"
)

type Annotator struct {
	recogniser recogniser.Client
	library    *patterns.Library
	blocklist  *blocklist.Blocklist
}

// New builds an annotator around an NER backend. The blocklist may be nil,
// in which case no post-merge filtering happens.
func New(client recogniser.Client, library *patterns.Library, bl *blocklist.Blocklist) *Annotator {
	return &Annotator{
		recogniser: client,
		library:    library,
		blocklist:  bl,
	}
}

// Annotate runs text through the full entity pipeline. An empty text is a
// valid empty result. An unreachable or failing NER backend is a hard error:
// callers cannot distinguish "no entities" from "no model" on their own, so
// we never swallow it into an empty result.
func (a *Annotator) Annotate(ctx context.Context, text, language, model string) ([]entity.Entity, error) {
	if text == "" {
		return []entity.Entity{}, nil
	}

	spans, err := a.recogniser.Recognise(ctx, &pb.ExtractRequest{
		Text:     text,
		Language: language,
		Model:    model,
	})
	if err != nil {
		return nil, err
	}

	modelEntities := make([]entity.Entity, len(spans))
	for i, span := range spans {
		entityType := entity.MapLabel(span.GetLabel())
		if !entityType.Known() {
			log.Debug().Str("label", span.GetLabel()).Msg("unmapped native label passed through")
		}
		modelEntities[i] = entity.Entity{
			Span: entity.Span{
				Text:     span.GetText(),
				Start:    int(span.GetStart()),
				End:      int(span.GetEnd()),
				Language: language,
			},
			Type:       entityType,
			Confidence: entity.EstimateConfidence(span.GetText(), span.GetLabel()),
		}
	}

	patternEntities := a.library.Augment(text, language)

	merged := merge.Merge(modelEntities, patternEntities)
	if a.blocklist != nil {
		merged = a.blocklist.FilterEntities(merged)
	}

	return merged, nil
}
