// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// DocumentRef identifica um documento no document store externo
type DocumentRef struct {
	Collection string
	ID         string
}

func (r DocumentRef) String() string {
	return r.Collection + "/" + r.ID
}

// Documentos observados pelo painel
var (
	DashboardDocument     = DocumentRef{Collection: "dashboard", ID: "main"}
	SalesDocument         = DocumentRef{Collection: "sales", ID: "main"}
	NotificationsDocument = DocumentRef{Collection: "notifications", ID: "main"}
)

// PreferencesCollection guarda um documento de preferências por usuário (uid)
const PreferencesCollection = "preferences"

// NotificationsField é o campo de lista do documento de notificações
const NotificationsField = "notifications"
