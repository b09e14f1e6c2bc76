package metadata

import (
	"bytes"
	"os"

	"github.com/dsoprea/go-iptc"

	"github.com/moses-palmer/medifs/internal/tag"
)

// iptcApplication2Record and iptcKeywordsDataset are the IPTC IIM record and
// dataset numbers for Iptc.Application2.Keywords: record 2 (Application
// Record), dataset 25 (Keywords). These numbers are part of the IIM
// standard, not an implementation detail of the decoder.
const (
	iptcApplication2Record = 2
	iptcKeywordsDataset    = 25
)

// readIptcKeywords reads the multi-valued Iptc.Application2.Keywords field
// from the file at path, parsing each value as a tag and falling back to
// the raw string when parsing fails. Any failure to open or decode the file
// yields an empty tag set; callers are expected to treat that the same as
// "no tags", not as an error.
func readIptcKeywords(path string) []tag.Tag {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	parsed, err := iptc.ParseStream(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	key := iptc.StreamTagKey{
		RecordNumber:  iptcApplication2Record,
		DatasetNumber: iptcKeywordsDataset,
	}

	var tags []tag.Tag
	for _, td := range parsed[key] {
		s := string(td.Data)
		t, err := tag.Parse(s)
		if err != nil {
			t = tag.Single(s)
		}
		tags = append(tags, t)
	}
	return tags
}
