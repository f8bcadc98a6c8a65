// Package mongostore implementa o document store sobre o MongoDB, com tempo real via change streams.
// Change streams exigem replica set.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const updatedAtField = "_updatedAt"

type Store struct {
	client   *mongo.Client
	database *mongo.Database

	mu      sync.Mutex
	cancels map[int]context.CancelFunc
	nextID  int
	closed  bool
	wg      sync.WaitGroup
}

func New(ctx context.Context, uri, dbName string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: falha ao conectar: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: falha no ping: %w", err)
	}

	logrus.WithField("database", dbName).Info("mongostore: conectado ao MongoDB")

	return &Store{
		client:   client,
		database: client.Database(dbName),
		cancels:  make(map[int]context.CancelFunc),
	}, nil
}

func (s *Store) GetDoc(ctx context.Context, collection, id string) (*docstore.Document, error) {
	var raw bson.Raw
	err := s.database.Collection(collection).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: erro ao ler %s/%s: %w", collection, id, err)
	}

	return toDocument(collection, id, raw)
}

func (s *Store) OnSnapshot(ctx context.Context, collection, id string, fn docstore.SnapshotFunc) (func(), error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, docstore.ErrClosed
	}
	s.nextID++
	subID := s.nextID
	s.mu.Unlock()

	watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "documentKey._id", Value: id}}}},
	}
	// O stream é aberto antes da leitura inicial para não perder alterações entre as duas
	stream, err := s.database.Collection(collection).Watch(
		watchCtx,
		pipeline,
		options.ChangeStream().SetFullDocument(options.UpdateLookup),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("mongostore: erro ao abrir change stream de %s/%s: %w", collection, id, err)
	}

	feed := docstore.NewFeed(fn)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		cancel()
		feed.Close()
		_ = stream.Close(context.Background())
		return nil, docstore.ErrClosed
	}
	s.cancels[subID] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.watch(watchCtx, stream, collection, id, feed)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.cancels, subID)
			s.mu.Unlock()

			cancel()
			feed.Close()
		})
	}, nil
}

func (s *Store) watch(ctx context.Context, stream *mongo.ChangeStream, collection, id string, feed *docstore.Feed) {
	defer s.wg.Done()
	defer feed.Close()
	defer stream.Close(context.Background())

	initial, err := s.GetDoc(ctx, collection, id)
	if err != nil {
		if ctx.Err() == nil {
			logrus.WithError(err).WithField("document", docstore.Key(collection, id)).Error("mongostore: erro na leitura inicial")
		}
		return
	}
	feed.Push(initial)

	for stream.Next(ctx) {
		var event struct {
			OperationType string   `bson:"operationType"`
			FullDocument  bson.Raw `bson:"fullDocument"`
		}
		if err := stream.Decode(&event); err != nil {
			logrus.WithError(err).Warn("mongostore: evento de change stream inválido")
			continue
		}

		if event.OperationType == "delete" || len(event.FullDocument) == 0 {
			feed.Push(nil)
			continue
		}

		doc, err := toDocument(collection, id, event.FullDocument)
		if err != nil {
			logrus.WithError(err).Warn("mongostore: documento inválido no change stream")
			continue
		}
		feed.Push(doc)
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		logrus.WithError(err).WithField("document", docstore.Key(collection, id)).Error("mongostore: change stream encerrado com erro")
	}
}

// UpdateDoc aplica $set nos campos de topo do patch, criando o documento se necessário
func (s *Store) UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error {
	set := bson.M{}
	for field, value := range patch {
		converted, err := toBSON(value)
		if err != nil {
			return err
		}
		set[field] = converted
	}

	update := bson.M{
		"$set":         set,
		"$currentDate": bson.M{updatedAtField: true},
	}

	_, err := s.database.Collection(collection).UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongostore: erro ao atualizar %s/%s: %w", collection, id, err)
	}
	return nil
}

// ArrayAppend usa $push, que é atômico no servidor
func (s *Store) ArrayAppend(ctx context.Context, collection, id, field string, value any) error {
	if field == "" {
		return docstore.ErrEmptyField
	}

	converted, err := toBSON(value)
	if err != nil {
		return err
	}

	update := bson.M{
		"$push":        bson.M{field: converted},
		"$currentDate": bson.M{updatedAtField: true},
	}

	_, err = s.database.Collection(collection).UpdateOne(
		ctx,
		bson.D{{Key: "_id", Value: id}},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mongostore: erro ao acrescentar em %s/%s.%s: %w", collection, id, field, err)
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for id, cancel := range s.cancels {
		cancel()
		delete(s.cancels, id)
	}
	s.mu.Unlock()

	s.wg.Wait()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// toBSON converte um valor Go para BSON passando pela forma JSON, como os outros adaptadores guardam
func toBSON(value any) (any, error) {
	normalized, err := docstore.Normalize(map[string]any{"v": value})
	if err != nil {
		return nil, err
	}

	raw, err := bson.MarshalExtJSON(normalized, false, false)
	if err != nil {
		return nil, fmt.Errorf("mongostore: erro ao converter valor: %w", err)
	}

	var wrapper bson.M
	if err := bson.UnmarshalExtJSON(raw, false, &wrapper); err != nil {
		return nil, fmt.Errorf("mongostore: erro ao converter valor: %w", err)
	}
	return wrapper["v"], nil
}

func toDocument(collection, id string, raw bson.Raw) (*docstore.Document, error) {
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("mongostore: erro ao decodificar %s/%s: %w", collection, id, err)
	}

	doc := &docstore.Document{Collection: collection, ID: id}
	if updatedAt, ok := fields[updatedAtField].(primitive.DateTime); ok {
		doc.UpdateTime = updatedAt.Time()
	}
	delete(fields, "_id")
	delete(fields, updatedAtField)

	data, err := bson.MarshalExtJSON(fields, false, false)
	if err != nil {
		return nil, fmt.Errorf("mongostore: erro ao serializar %s/%s: %w", collection, id, err)
	}
	doc.Data = data

	return doc, nil
}
