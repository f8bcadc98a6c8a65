// Package pgstore implementa o document store sobre uma tabela JSONB do Postgres,
// com tempo real via LISTEN/NOTIFY.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	readTimeout      = 10 * time.Second
	listenerPingRate = 90 * time.Second
	neverDelivered   = -2
	missingRevision  = -1
)

type subscriber struct {
	feed *docstore.Feed
	// última revisão entregue; missingRevision quando o documento não existia
	lastRevision int64
}

type Store struct {
	conn     *postgres.Connection
	listener *pq.Listener
	channel  string

	mu          sync.Mutex
	subscribers map[string]map[int]*subscriber
	nextID      int
	closed      bool

	refresh chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

func New(conn *postgres.Connection, channel string) (*Store, error) {
	listener := pq.NewListener(conn.DSN(), time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).WithField("event", ev).Warn("pgstore: evento do listener")
		}
	})

	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("pgstore: erro ao escutar canal %s: %w", channel, err)
	}

	s := &Store{
		conn:        conn,
		listener:    listener,
		channel:     channel,
		subscribers: make(map[string]map[int]*subscriber),
		refresh:     make(chan string, 64),
		done:        make(chan struct{}),
	}

	s.wg.Add(1)
	go s.listen()

	return s, nil
}

func (s *Store) GetDoc(ctx context.Context, collection, id string) (*docstore.Document, error) {
	doc, _, err := s.read(ctx, collection, id)
	return doc, err
}

func (s *Store) OnSnapshot(_ context.Context, collection, id string, fn docstore.SnapshotFunc) (func(), error) {
	key := docstore.Key(collection, id)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, docstore.ErrClosed
	}

	s.nextID++
	subID := s.nextID
	sub := &subscriber{feed: docstore.NewFeed(fn), lastRevision: neverDelivered}
	if s.subscribers[key] == nil {
		s.subscribers[key] = make(map[int]*subscriber)
	}
	s.subscribers[key][subID] = sub
	s.mu.Unlock()

	// O snapshot inicial é lido pela mesma goroutine que trata as notificações,
	// assim a ordem de entrega segue a ordem dos commits.
	select {
	case s.refresh <- key:
	case <-s.done:
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers[key], subID)
			if len(s.subscribers[key]) == 0 {
				delete(s.subscribers, key)
			}
			s.mu.Unlock()

			sub.feed.Close()
		})
	}, nil
}

// UpdateDoc mescla os campos de topo do patch no documento, criando-o se necessário
func (s *Store) UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("pgstore: erro ao serializar patch: %w", err)
	}

	query, args, err := updateQuery(collection, id, raw)
	if err != nil {
		return err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("pgstore: erro ao atualizar %s/%s: %w", collection, id, err)
	}
	return nil
}

// ArrayAppend acrescenta value à lista field numa única instrução, sem
// leitura prévia, então appends concorrentes são todos preservados.
func (s *Store) ArrayAppend(ctx context.Context, collection, id, field string, value any) error {
	if field == "" {
		return docstore.ErrEmptyField
	}

	raw, err := json.Marshal(map[string]any{field: []any{value}})
	if err != nil {
		return fmt.Errorf("pgstore: erro ao serializar valor: %w", err)
	}

	query, args, err := appendQuery(collection, id, field, raw)
	if err != nil {
		return err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("pgstore: erro ao acrescentar em %s/%s.%s: %w", collection, id, field, err)
	}
	return nil
}

func insertDocument(collection, id string, raw []byte) squirrel.InsertBuilder {
	return squirrel.
		Insert(documentsTable).
		Columns("collection", "id", "data").
		Values(collection, id, squirrel.Expr("?::jsonb", string(raw))).
		PlaceholderFormat(squirrel.Dollar)
}

func updateQuery(collection, id string, raw []byte) (string, []any, error) {
	return insertDocument(collection, id, raw).
		Suffix("ON CONFLICT (collection, id) DO UPDATE SET data = documents.data || EXCLUDED.data, version = documents.version + 1, revision = " + nextRevision + ", updated_at = NOW()").
		ToSql()
}

func appendQuery(collection, id, field string, raw []byte) (string, []any, error) {
	return insertDocument(collection, id, raw).
		Suffix(`ON CONFLICT (collection, id) DO UPDATE SET
			data = jsonb_set(
				documents.data,
				ARRAY[?]::text[],
				(CASE WHEN jsonb_typeof(documents.data -> ?::text) = 'array' THEN documents.data -> ?::text ELSE '[]'::jsonb END) || (EXCLUDED.data -> ?::text),
				true
			),
			version = documents.version + 1,
			revision = `+nextRevision+`,
			updated_at = NOW()`, field, field, field, field).
		ToSql()
}

func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	for key, subs := range s.subscribers {
		for _, sub := range subs {
			sub.feed.Close()
		}
		delete(s.subscribers, key)
	}
	s.mu.Unlock()

	return s.listener.Close()
}

func (s *Store) listen() {
	defer s.wg.Done()

	ticker := time.NewTicker(listenerPingRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case n := <-s.listener.Notify:
			if n == nil {
				// Reconexão: notificações podem ter sido perdidas
				logrus.Info("pgstore: listener reconectado, recarregando documentos assinados")
				s.deliverAll()
				continue
			}
			s.deliver(n.Extra)
		case key := <-s.refresh:
			s.deliver(key)
		case <-ticker.C:
			if err := s.listener.Ping(); err != nil {
				logrus.WithError(err).Warn("pgstore: falha no ping do listener")
			}
		}
	}
}

func (s *Store) deliverAll() {
	s.mu.Lock()
	keys := make([]string, 0, len(s.subscribers))
	for key := range s.subscribers {
		keys = append(keys, key)
	}
	s.mu.Unlock()

	for _, key := range keys {
		s.deliver(key)
	}
}

// deliver relê o documento e empurra o snapshot a quem ainda não viu essa revisão
func (s *Store) deliver(key string) {
	collection, id, ok := strings.Cut(key, "/")
	if !ok {
		logrus.WithField("payload", key).Warn("pgstore: notificação com payload inválido")
		return
	}

	s.mu.Lock()
	interested := len(s.subscribers[key]) > 0
	s.mu.Unlock()
	if !interested {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), readTimeout)
	defer cancel()

	doc, revision, err := s.read(ctx, collection, id)
	if err != nil {
		logrus.WithError(err).WithField("document", key).Error("pgstore: erro ao ler documento notificado")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subscribers[key] {
		if sub.lastRevision == revision {
			continue
		}
		sub.lastRevision = revision
		sub.feed.Push(doc)
	}
}

func (s *Store) read(ctx context.Context, collection, id string) (*docstore.Document, int64, error) {
	query, args, err := readQuery(collection, id)
	if err != nil {
		return nil, missingRevision, err
	}

	doc := &docstore.Document{Collection: collection, ID: id}
	var revision int64
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&doc.Data, &revision, &doc.UpdateTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, missingRevision, nil
	}
	if err != nil {
		return nil, missingRevision, fmt.Errorf("pgstore: erro ao ler %s/%s: %w", collection, id, err)
	}

	return doc, revision, nil
}

func readQuery(collection, id string) (string, []any, error) {
	return squirrel.
		Select("data", "revision", "updated_at").
		From(documentsTable).
		Where(squirrel.Eq{"collection": collection, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
