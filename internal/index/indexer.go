/*
Package index implements the local file-index provider.

It plays the role of the external "Everything" service: a fast name index
over filesystem entries that answers substring-style queries with
path/name/folder tuples and a total count. The launcher core consumes it
through the same streaming contract an external indexer would use, so the
two are interchangeable.

The index is Bleve with the scorch backend, in-memory by default or on disk
when a path is given.
*/
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

// Indexer manages the file-name search index.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
	indexPath  string
}

// NewIndexer creates an in-memory indexer for fast startup.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}
	return &Indexer{bleveIndex: index}, nil
}

// NewIndexerWithPath creates or opens a persistent indexer on disk.
func NewIndexerWithPath(indexPath string) (*Indexer, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	index, err := bleve.NewUsing(indexPath, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		index, err = bleve.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open/create index: %w", err)
		}
	}

	return &Indexer{bleveIndex: index, indexPath: indexPath}, nil
}

// buildIndexMapping creates the Bleve mapping for file documents.
func buildIndexMapping() mapping.IndexMapping {
	fileMapping := bleve.NewDocumentMapping()

	nameField := bleve.NewTextFieldMapping()
	fileMapping.AddFieldMappingsAt("name", nameField)

	pathField := bleve.NewTextFieldMapping()
	fileMapping.AddFieldMappingsAt("path", pathField)

	// Stored for retrieval only.
	folderField := bleve.NewBooleanFieldMapping()
	folderField.Index = false
	folderField.IncludeInAll = false
	fileMapping.AddFieldMappingsAt("isFolder", folderField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", fileMapping)
	return indexMapping
}

// IndexFiles adds or updates a batch of file records. The normalized path
// is the document identity.
func (i *Indexer) IndexFiles(records []candidate.EverythingResult) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()
	for _, rec := range records {
		doc := map[string]interface{}{
			"name":     rec.Name,
			"path":     rec.Path,
			"isFolder": rec.IsFolder,
		}
		if err := batch.Index(candidate.NormalizePath(rec.Path), doc); err != nil {
			return fmt.Errorf("failed to index %s: %w", rec.Path, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index files: %w", err)
	}
	return nil
}

// Remove deletes one file record.
func (i *Indexer) Remove(path string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.bleveIndex.Delete(candidate.NormalizePath(path))
}

// Count returns the total number of indexed files.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	count, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}
	return count, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}
	return nil
}

// buildQuery matches the query against file names and paths. A disjunction
// of a match query and a wildcard keeps substring-style hits without any
// typo tolerance.
func buildQuery(searchText string) query.Query {
	match := bleve.NewMatchQuery(searchText)
	match.SetField("name")

	wildcard := bleve.NewWildcardQuery("*" + searchText + "*")
	wildcard.SetField("name")

	pathMatch := bleve.NewMatchQuery(searchText)
	pathMatch.SetField("path")

	return bleve.NewDisjunctionQuery(match, wildcard, pathMatch)
}

// search runs one paged query under the read lock.
func (i *Indexer) search(searchText string, limit, offset int) (*bleve.SearchResult, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	req := bleve.NewSearchRequestOptions(buildQuery(searchText), limit, offset, false)
	req.Fields = []string{"name", "path", "isFolder"}

	res, err := i.bleveIndex.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}
	return res, nil
}

// convertHits converts Bleve hits to provider records.
func convertHits(res *bleve.SearchResult) []candidate.EverythingResult {
	out := make([]candidate.EverythingResult, 0, len(res.Hits))
	for _, hit := range res.Hits {
		name, _ := hit.Fields["name"].(string)
		path, _ := hit.Fields["path"].(string)
		isFolder, _ := hit.Fields["isFolder"].(bool)
		out = append(out, candidate.EverythingResult{
			Name:     name,
			Path:     path,
			IsFolder: isFolder,
		})
	}
	return out
}

// Search returns up to limit results plus the total hit count.
func (i *Indexer) Search(searchText string, limit int) ([]candidate.EverythingResult, uint64, error) {
	if limit <= 0 {
		limit = 100
	}
	res, err := i.search(searchText, limit, 0)
	if err != nil {
		return nil, 0, err
	}
	return convertHits(res), res.Total, nil
}
