package realtime

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/docstore"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode converte o documento no snapshot tipado. Documento ausente ou malformado
// resulta em nil, que os consumidores tratam como "carregando/vazio".
func Decode[T any](doc *docstore.Document) *T {
	if doc == nil || len(doc.Data) == 0 {
		return nil
	}

	var out T
	if err := json.Unmarshal(doc.Data, &out); err != nil {
		logrus.WithError(err).
			WithField("document", docstore.Key(doc.Collection, doc.ID)).
			Warn("Documento malformado ignorado")
		return nil
	}
	return &out
}

// WatchDocument assina o documento entregando o snapshot já decodificado
func WatchDocument[T any](ctx context.Context, bridge *Bridge, ref domain.DocumentRef, fn func(*T)) (*Subscription, error) {
	return bridge.Watch(ctx, ref, func(doc *docstore.Document) {
		fn(Decode[T](doc))
	})
}
