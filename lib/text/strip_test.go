/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "Licence");
 * you may not use this file except in compliance with the Licence.
 * You may obtain a copy of the Licence at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the Licence is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the Licence for the specific language governing permissions and
 * limitations under the Licence.
 */

package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	doc := `<html><head><title>paper</title><style>p { color: red; }</style></head>
<body><p>We fine-tuned <b>BERT</b> on SQuAD.</p><script>alert("hi")</script></body></html>`

	b, err := StripHTML(strings.NewReader(doc))
	require.NoError(t, err)

	got := string(b)
	assert.Contains(t, got, "We fine-tuned BERT on SQuAD.")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "alert")
}

func TestStripHTMLInlineTagsDoNotBreakWords(t *testing.T) {
	b, err := StripHTML(strings.NewReader("<p>hae<sub>mo</sub>globin</p>"))
	require.NoError(t, err)

	assert.Contains(t, string(b), "haemoglobin")
}

func TestStripHTMLBlockEndsBecomeNewlines(t *testing.T) {
	b, err := StripHTML(strings.NewReader("<div>first</div><div>second</div>"))
	require.NoError(t, err)

	assert.Equal(t, "first\nsecond\n", string(b))
}

func TestStripHTMLNestedDisallowed(t *testing.T) {
	doc := `<p>before</p><noscript><p>hidden</p></noscript><p>after</p>`

	b, err := StripHTML(strings.NewReader(doc))
	require.NoError(t, err)

	got := string(b)
	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "hidden")
}
