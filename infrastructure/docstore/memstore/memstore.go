// Package memstore implementa o document store em memória, com entrega de snapshots em tempo real
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
)

type Store struct {
	mu          sync.Mutex
	docs        map[string]*docstore.Document
	subscribers map[string]map[int]*docstore.Feed
	nextID      int
	closed      bool
	now         func() time.Time
}

func New() *Store {
	return &Store{
		docs:        make(map[string]*docstore.Document),
		subscribers: make(map[string]map[int]*docstore.Feed),
		now:         time.Now,
	}
}

// Seed grava o documento inteiro, substituindo o conteúdo anterior
func (s *Store) Seed(collection, id string, data any) error {
	normalized, err := docstore.Normalize(data)
	if err != nil {
		return err
	}

	fields, _ := normalized.(map[string]any)
	raw, err := docstore.MergePatch(nil, fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(collection, id, raw)
}

// Delete remove o documento; assinantes recebem nil
func (s *Store) Delete(collection, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := docstore.Key(collection, id)
	delete(s.docs, key)
	s.publish(key, nil)
}

func (s *Store) GetDoc(_ context.Context, collection, id string) (*docstore.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, docstore.ErrClosed
	}

	return copyDocument(s.docs[docstore.Key(collection, id)]), nil
}

func (s *Store) OnSnapshot(_ context.Context, collection, id string, fn docstore.SnapshotFunc) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, docstore.ErrClosed
	}

	key := docstore.Key(collection, id)
	feed := docstore.NewFeed(fn)

	s.nextID++
	subID := s.nextID
	if s.subscribers[key] == nil {
		s.subscribers[key] = make(map[int]*docstore.Feed)
	}
	s.subscribers[key][subID] = feed

	// O primeiro snapshot é o estado atual (possivelmente inexistente)
	feed.Push(copyDocument(s.docs[key]))

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[key], subID)
			if len(s.subscribers[key]) == 0 {
				delete(s.subscribers, key)
			}
			s.mu.Unlock()

			feed.Close()
		})
	}, nil
}

func (s *Store) UpdateDoc(_ context.Context, collection, id string, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return docstore.ErrClosed
	}

	current := s.docs[docstore.Key(collection, id)]
	var data []byte
	if current != nil {
		data = current.Data
	}

	merged, err := docstore.MergePatch(data, patch)
	if err != nil {
		return err
	}

	return s.write(collection, id, merged)
}

func (s *Store) ArrayAppend(_ context.Context, collection, id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return docstore.ErrClosed
	}

	current := s.docs[docstore.Key(collection, id)]
	var data []byte
	if current != nil {
		data = current.Data
	}

	appended, err := docstore.AppendToArray(data, field, value)
	if err != nil {
		return err
	}

	return s.write(collection, id, appended)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for key, feeds := range s.subscribers {
		for _, feed := range feeds {
			feed.Close()
		}
		delete(s.subscribers, key)
	}
	return nil
}

// write deve ser chamado com s.mu travado; a publicação sob a trava garante
// que cada assinante veja as alterações na ordem em que foram aplicadas.
func (s *Store) write(collection, id string, data []byte) error {
	key := docstore.Key(collection, id)
	doc := &docstore.Document{
		Collection: collection,
		ID:         id,
		Data:       data,
		UpdateTime: s.now(),
	}
	s.docs[key] = doc
	s.publish(key, doc)
	return nil
}

func (s *Store) publish(key string, doc *docstore.Document) {
	for _, feed := range s.subscribers[key] {
		feed.Push(copyDocument(doc))
	}
}

func copyDocument(doc *docstore.Document) *docstore.Document {
	if doc == nil {
		return nil
	}

	data := make([]byte, len(doc.Data))
	copy(data, doc.Data)
	return &docstore.Document{
		Collection: doc.Collection,
		ID:         doc.ID,
		Data:       data,
		UpdateTime: doc.UpdateTime,
	}
}
