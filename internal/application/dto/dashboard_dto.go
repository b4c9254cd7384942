package dto

// DashboardResponse totales para la pantalla inicial del SPA.
type DashboardResponse struct {
	Products   int `json:"produtos"`
	People     int `json:"pessoas"`
	Users      int `json:"usuarios"`
	Movements  int `json:"movimentacoes"`
	LowStock   int `json:"estoqueBaixo"`
	OutOfStock int `json:"semEstoque"`
}
