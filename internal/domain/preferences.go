package domain

// Preferences guarda o estado de interface de um usuário
type Preferences struct {
	SidebarOpen bool `json:"sidebarOpen"`
}

// DefaultPreferences espelha o comportamento inicial do painel: sidebar aberta
func DefaultPreferences() Preferences {
	return Preferences{SidebarOpen: true}
}
