package domain

import (
	"fmt"
	"regexp"

	m "github.com/mouse-blink/punctnorm/internal/model"
)

// excludeDocuments drops documents whose source path matches any pattern.
func excludeDocuments(docs []m.Document, patterns []string) ([]m.Document, error) {
	if len(patterns) == 0 {
		return docs, nil
	}

	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}

		res = append(res, re)
	}

	kept := make([]m.Document, 0, len(docs))

outer:
	for _, doc := range docs {
		for _, re := range res {
			if re.MatchString(string(doc.Source)) {
				continue outer
			}
		}

		kept = append(kept, doc)
	}

	return kept, nil
}

// shardDocuments keeps every total-th document starting at index, so
// several machines can split one corpus without coordination.
func shardDocuments(docs []m.Document, index, total int) []m.Document {
	if total <= 1 {
		return docs
	}

	kept := make([]m.Document, 0, len(docs)/total+1)

	for i, doc := range docs {
		if i%total == index {
			kept = append(kept, doc)
		}
	}

	return kept
}
