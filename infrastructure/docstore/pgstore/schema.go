package pgstore

import (
	"fmt"

	"github.com/lib/pq"
)

const (
	documentsTable   = "documents"
	revisionSequence = "documents_revision_seq"
)

// nextRevision é avaliado a cada escrita. A sequência é global e nunca recomeça,
// então um documento apagado e recriado não repete uma revisão já entregue.
const nextRevision = "nextval('" + revisionSequence + "')"

// Schema devolve o DDL da tabela de documentos e do trigger que publica
// "collection/id" no canal de notificação a cada alteração.
func Schema(channel string) string {
	return fmt.Sprintf(`
CREATE SEQUENCE IF NOT EXISTS %[1]s;

CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	data JSONB NOT NULL DEFAULT '{}'::jsonb,
	version BIGINT NOT NULL DEFAULT 1,
	revision BIGINT NOT NULL DEFAULT %[2]s,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (collection, id)
);

ALTER TABLE documents ADD COLUMN IF NOT EXISTS revision BIGINT NOT NULL DEFAULT %[2]s;

CREATE OR REPLACE FUNCTION notify_document_change() RETURNS trigger AS $$
BEGIN
	IF TG_OP = 'DELETE' THEN
		PERFORM pg_notify(TG_ARGV[0], OLD.collection || '/' || OLD.id);
		RETURN OLD;
	END IF;
	PERFORM pg_notify(TG_ARGV[0], NEW.collection || '/' || NEW.id);
	RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS documents_notify ON documents;
CREATE TRIGGER documents_notify
	AFTER INSERT OR UPDATE OR DELETE ON documents
	FOR EACH ROW EXECUTE FUNCTION notify_document_change(%[3]s);
`, revisionSequence, nextRevision, pq.QuoteLiteral(channel))
}
