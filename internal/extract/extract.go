// Package extract pulls labelled IPv4 addresses out of resolver output.
//
// The match assumes the address sits on the same line as its label and is
// directly followed by whitespace, which is how nslookup prints "Server:" and
// "Address:" on most platforms. Lines such as "Address: 10.0.0.1#53" do not
// match.
package extract

import (
	"regexp"
	"strings"

	"github.com/gg3-devnet/gg3/pkg/model"
)

// DefaultKeywords are the labels shown by default.
var DefaultKeywords = []string{"Server", "Address"}

var dottedQuad = regexp.MustCompile(`\b(\d{1,3}(?:\.\d{1,3}){3})\b\s`)

type Extractor struct {
	Keywords []string
}

func New(keywords ...string) Extractor {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	return Extractor{Keywords: keywords}
}

// Extract returns one record per address whose preceding text on the same
// line contains a keyword, in the order they appear. An empty result is not
// an error.
func (e Extractor) Extract(text string) []model.ExtractedRecord {
	var records []model.ExtractedRecord
	for _, m := range dottedQuad.FindAllStringSubmatchIndex(text, -1) {
		start := m[2]
		lineStart := strings.LastIndexByte(text[:start], '\n') + 1
		prefix := strings.TrimSpace(text[lineStart:start])
		if !e.interesting(prefix) {
			continue
		}
		label, _, _ := strings.Cut(prefix, ":")
		records = append(records, model.ExtractedRecord{
			Label:   strings.ToUpper(label),
			Address: text[m[2]:m[3]],
		})
	}
	return records
}

func (e Extractor) interesting(prefix string) bool {
	for _, k := range e.Keywords {
		if strings.Contains(prefix, k) {
			return true
		}
	}
	return false
}
