package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jilyoungservice-beep/contractgenius/backend/config"
	"github.com/jilyoungservice-beep/contractgenius/backend/model"
)

// Document is one editing session: a contract aggregate plus bookkeeping.
// The aggregate is held by value; mutations swap the whole thing.
type Document struct {
	ID        string             `json:"id"`
	Tenant    string             `json:"tenant"`
	Data      model.ContractData `json:"data"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// DocumentStore is an in-memory store for contract editing sessions.
// Sessions live only for the process lifetime; there is no persistence.
type DocumentStore struct {
	documents    map[string]*Document
	mu           sync.RWMutex
	maxDocuments int // Maximum sessions to keep, 0 = unlimited
}

var (
	globalStore *DocumentStore
	storeOnce   sync.Once
)

// InitDocumentStore initializes the global document store with configuration
func InitDocumentStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxDocuments := cfg.MaxDocuments
		if maxDocuments < 0 {
			maxDocuments = 0
		}
		globalStore = &DocumentStore{
			documents:    make(map[string]*Document),
			maxDocuments: maxDocuments,
		}
		slog.Info("document store initialized", "max_documents", maxDocuments)
	})
}

// GetDocumentStore returns the global document store
func GetDocumentStore() *DocumentStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &DocumentStore{
			documents:    make(map[string]*Document),
			maxDocuments: 100,
		}
	}
	return globalStore
}

func (s *DocumentStore) Save(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.UpdatedAt = time.Now()
	s.documents[doc.ID] = doc

	// Cleanup if exceeds max
	s.cleanupIfNeeded()
}

// Get returns a copy of the document so callers never share the stored
// aggregate. Returns nil when the id is unknown.
func (s *DocumentStore) Get(id string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil
	}
	cp := *doc
	return &cp
}

func (s *DocumentStore) GetByTenant(tenant string) []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Document
	for _, doc := range s.documents {
		if doc.Tenant == tenant {
			cp := *doc
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *DocumentStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
}

// Apply runs a pure mutation against the stored aggregate and replaces it
// wholesale under the lock. This is the single writer for a session: every
// edit goes model -> mutation -> new model, never field-by-field in place.
// Returns the updated document, or nil when the id is unknown.
func (s *DocumentStore) Apply(id string, fn func(model.ContractData) model.ContractData) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil
	}

	doc.Data = fn(doc.Data)
	doc.UpdatedAt = time.Now()

	cp := *doc
	return &cp
}

// cleanupIfNeeded removes oldest sessions if store exceeds maxDocuments
// Must be called with lock held
func (s *DocumentStore) cleanupIfNeeded() {
	if s.maxDocuments <= 0 {
		return // Unlimited
	}

	if len(s.documents) <= s.maxDocuments {
		return
	}

	// Sort sessions by creation time
	docs := make([]*Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.Before(docs[j].CreatedAt)
	})

	// Remove oldest sessions
	removeCount := len(docs) - s.maxDocuments
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old document session",
			"document_id", docs[i].ID,
			"created_at", docs[i].CreatedAt,
		)
		delete(s.documents, docs[i].ID)
	}
}

// Count returns the number of sessions in the store
func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}
