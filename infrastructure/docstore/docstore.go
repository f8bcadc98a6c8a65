// Package docstore define o contrato do document store externo (snapshots em tempo real)
package docstore

import (
	"context"
	"errors"
	"time"
)

var (
	ErrEmptyField = errors.New("docstore: campo obrigatório")
	ErrClosed     = errors.New("docstore: store encerrado")
)

// Document é uma cópia completa de um documento remoto. Data é JSON.
type Document struct {
	Collection string
	ID         string
	Data       []byte
	UpdateTime time.Time
}

// SnapshotFunc recebe o documento atual, ou nil quando ele não existe
type SnapshotFunc func(doc *Document)

//go:generate mockgen -source=docstore.go -destination=mocks/docstore_mock.go -package=mocks
type Store interface {
	GetDoc(ctx context.Context, collection, id string) (*Document, error)
	OnSnapshot(ctx context.Context, collection, id string, fn SnapshotFunc) (func(), error)
	UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error
	ArrayAppend(ctx context.Context, collection, id, field string, value any) error
	Close() error
}

func Key(collection, id string) string {
	return collection + "/" + id
}
