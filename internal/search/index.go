package search

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index holds the derived search documents for videos: title and
// description, tokenized and stemmed with the English analyzer. It is
// written at video-insert time and only ever queried for ranked ids.
type Index struct {
	idx bleve.Index
}

// A Hit is one ranked search result.
type Hit struct {
	VideoID uint64
	Score   float64
}

type document struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func indexMapping() *mapping.IndexMappingImpl {
	m := bleve.NewIndexMapping()
	m.DefaultAnalyzer = en.AnalyzerName
	return m
}

// Open opens the index at path, creating it when absent.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		idx, err = bleve.New(path, indexMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open search index: %w", err)
	}
	return &Index{idx: idx}, nil
}

// NewInMemory builds a throwaway index for tests and seeding dry runs.
func NewInMemory() (*Index, error) {
	idx, err := bleve.NewMemOnly(indexMapping())
	if err != nil {
		return nil, fmt.Errorf("cannot create in-memory search index: %w", err)
	}
	return &Index{idx: idx}, nil
}

// Index derives and stores the search document for a video. Re-indexing
// the same id overwrites the previous document.
func (s *Index) Index(videoID uint64, title, description string) error {
	return s.idx.Index(docID(videoID), document{Title: title, Description: description})
}

// Delete removes a video's search document.
func (s *Index) Delete(videoID uint64) error {
	return s.idx.Delete(docID(videoID))
}

// Search matches term against the indexed documents and returns video
// ids ordered by descending relevance. The score combines per-term
// frequency with a boosted phrase clause, so documents where the query
// terms appear close together and often rank first. Ties break by
// ascending id. Videos with no matching term never appear.
func (s *Index) Search(term string) ([]Hit, error) {
	match := bleve.NewMatchQuery(term)
	phrase := bleve.NewMatchPhraseQuery(term)
	phrase.SetBoost(2)

	req := bleve.NewSearchRequest(bleve.NewDisjunctionQuery(match, phrase))

	// no pagination: every matching document is a candidate, so size
	// the request to the whole corpus
	count, err := s.idx.DocCount()
	if err != nil {
		return nil, fmt.Errorf("cannot size search request: %w", err)
	}
	req.Size = int(count)

	res, err := s.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		id, err := strconv.ParseUint(h.ID, 10, 64)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{VideoID: id, Score: h.Score})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].VideoID < hits[j].VideoID
	})

	return hits, nil
}

func (s *Index) Close() error {
	return s.idx.Close()
}

func docID(videoID uint64) string {
	return strconv.FormatUint(videoID, 10)
}
