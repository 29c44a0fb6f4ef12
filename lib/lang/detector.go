package lang

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/multilingual-annotation/lib/text"
)

// Detector is a black-box language identification backend. It returns its
// guesses ranked most probable first, using its own language codes.
type Detector interface {
	Detect(text string) ([]Guess, error)
}

// NewHTTPDetector returns a Detector backed by a detection service which
// accepts plain text and responds with a ranked JSON array of
// {"lang": code, "prob": probability} objects.
func NewHTTPDetector(url string) Detector {
	return &httpDetector{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

type httpDetector struct {
	url        string
	httpClient lib.HttpClient
}

type rawGuess struct {
	Lang string  `json:"lang"`
	Prob float64 `json:"prob"`
}

func (d *httpDetector) Detect(t string) ([]Guess, error) {
	req, err := http.NewRequest(http.MethodPost, d.url, strings.NewReader(t))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("detector returned status %d", resp.StatusCode)
	}

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var raw []rawGuess
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}

	guesses := make([]Guess, len(raw))
	for i, g := range raw {
		guesses[i] = Guess{Language: g.Lang, Confidence: g.Prob}
	}
	return guesses, nil
}

// Detect runs one text through the detector and normalizes the outcome.
// Detector failures - including texts with no word tokens at all, which
// detectors reject as unclassifiable - degrade to Undetermined rather than
// propagating: a failed detection is a reviewable result, not an error.
func Detect(detector Detector, t string, threshold float64) Detection {
	count, err := text.CountTokens(t)
	if err != nil || count == 0 {
		return Undetermined()
	}

	guesses, err := detector.Detect(t)
	if err != nil {
		log.Debug().Err(err).Msg("language detection failed")
		return Undetermined()
	}

	return Normalize(guesses, threshold)
}

// DetectAll fans a batch of independent texts out to the detector and
// returns one Detection per text, in order. Each item degrades on its own;
// no failure aborts the batch.
func DetectAll(detector Detector, texts []string, threshold float64) []Detection {
	detections := make([]Detection, len(texts))
	var wg sync.WaitGroup
	for i, t := range texts {
		wg.Add(1)
		go func(i int, t string) {
			defer wg.Done()
			detections[i] = Detect(detector, t, threshold)
		}(i, t)
	}
	wg.Wait()
	return detections
}
