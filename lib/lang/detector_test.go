package lang

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetector struct {
	guesses []Guess
	err     error
}

func (s stubDetector) Detect(string) ([]Guess, error) {
	return s.guesses, s.err
}

func TestHTTPDetector(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lang": "en", "prob": 0.95}, {"lang": "ja", "prob": 0.03}]`))
	}))
	defer ts.Close()

	guesses, err := NewHTTPDetector(ts.URL).Detect("hello world")

	require.NoError(t, err)
	assert.Equal(t, []Guess{
		{Language: "en", Confidence: 0.95},
		{Language: "ja", Confidence: 0.03},
	}, guesses)
}

func TestHTTPDetectorBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	_, err := NewHTTPDetector(ts.URL).Detect("hello world")
	assert.Error(t, err)
}

func TestHTTPDetectorBadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer ts.Close()

	_, err := NewHTTPDetector(ts.URL).Detect("hello world")
	assert.Error(t, err)
}

func TestDetectDegradesOnDetectorError(t *testing.T) {
	detector := stubDetector{err: errors.New("text too short")}
	assert.Equal(t, Undetermined(), Detect(detector, "hello world", 0.7))
}

func TestDetectDegradesOnEmptyText(t *testing.T) {
	// whitespace-only text never reaches the detector.
	detector := stubDetector{err: errors.New("should not be called")}
	assert.Equal(t, Undetermined(), Detect(detector, "   ", 0.7))
	assert.Equal(t, Undetermined(), Detect(detector, "", 0.7))
}

func TestDetectNormalizes(t *testing.T) {
	detector := stubDetector{guesses: []Guess{{Language: "zh-cn", Confidence: 0.99}}}

	got := Detect(detector, "你好世界", 0.7)

	assert.Equal(t, "zh", got.Language)
	assert.False(t, got.RequiresManualReview)
}

func TestDetectAll(t *testing.T) {
	detector := stubDetector{guesses: []Guess{{Language: "en", Confidence: 0.9}}}

	got := DetectAll(detector, []string{"hello world", "", "more text"}, 0.7)

	require.Len(t, got, 3)
	assert.Equal(t, "en", got[0].Language)
	// the middle item fails alone; its neighbours still succeed.
	assert.Equal(t, Undetermined(), got[1])
	assert.Equal(t, "en", got[2].Language)
}

func TestDetectAllEmptyBatch(t *testing.T) {
	got := DetectAll(stubDetector{}, nil, 0.7)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
