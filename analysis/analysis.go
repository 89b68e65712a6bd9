// SPDX-License-Identifier: MIT

package analysis

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/hill/codec"
	"github.com/katalvlaran/hill/modular"
)

// ErrNoLetters is returned by Summarize for text without letters.
var ErrNoLetters = errors.New("analysis: text has no letters")

// Summary describes the letter histogram of a text.
type Summary struct {
	Letters    int     // number of A–Z letters counted
	Mean       float64 // mean count per letter (Letters/26)
	StdDev     float64 // population standard deviation of the 26 counts
	Max        float64 // count of the most frequent letter
	Coincident float64 // index of coincidence
}

// Frequencies counts each letter of text, case-insensitively; other bytes are ignored.
func Frequencies(text string) [modular.Modulus]int {
	var counts [modular.Modulus]int
	letters := codec.Letters(text)
	var i int
	for i = 0; i < len(letters); i++ {
		counts[letters[i]-'A']++
	}

	return counts
}

// IndexOfCoincidence returns Σ f(f−1) / (N(N−1)): the probability that two
// letters drawn without replacement are equal. Texts with fewer than two
// letters return 0.
func IndexOfCoincidence(text string) float64 {
	counts := Frequencies(text)
	total, pairs := 0, 0
	for _, f := range counts {
		total += f
		pairs += f * (f - 1)
	}
	if total < 2 {
		return 0
	}

	return float64(pairs) / float64(total*(total-1))
}

// Summarize computes a Summary of text.
// Errors: ErrNoLetters when text holds no letters.
func Summarize(text string) (Summary, error) {
	counts := Frequencies(text)
	data := make(stats.Float64Data, 0, len(counts))
	total := 0
	for _, f := range counts {
		data = append(data, float64(f))
		total += f
	}
	if total == 0 {
		return Summary{}, ErrNoLetters
	}

	mean, err := data.Mean()
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	sd, err := data.StandardDeviationPopulation()
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}
	peak, err := data.Max()
	if err != nil {
		return Summary{}, fmt.Errorf("Summarize: %w", err)
	}

	return Summary{
		Letters:    total,
		Mean:       mean,
		StdDev:     sd,
		Max:        peak,
		Coincident: IndexOfCoincidence(text),
	}, nil
}

// String renders a one-line report.
func (s Summary) String() string {
	return fmt.Sprintf("letters=%d mean=%.2f stddev=%.2f max=%.0f ic=%.4f",
		s.Letters, s.Mean, s.StdDev, s.Max, s.Coincident)
}
