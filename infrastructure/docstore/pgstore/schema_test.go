package pgstore

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema(t *testing.T) {
	ddl := Schema("doc_changes")

	assert.Contains(t, ddl, "CREATE SEQUENCE IF NOT EXISTS documents_revision_seq;")
	assert.Contains(t, ddl, "revision BIGINT NOT NULL DEFAULT nextval('documents_revision_seq')")
	assert.Contains(t, ddl, "ALTER TABLE documents ADD COLUMN IF NOT EXISTS revision")
	assert.Contains(t, ddl, "EXECUTE FUNCTION notify_document_change('doc_changes');")
	assert.Less(t, strings.Index(ddl, "CREATE SEQUENCE"), strings.Index(ddl, "CREATE TABLE"))
}

func TestSchema_QuotesChannel(t *testing.T) {
	ddl := Schema("canal'); DROP TABLE documents; --")

	assert.Contains(t, ddl, "notify_document_change('canal''); DROP TABLE documents; --');")
}
