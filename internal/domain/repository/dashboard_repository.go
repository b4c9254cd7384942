package repository

// DashboardCounters totales agregados para la pantalla inicial.
type DashboardCounters struct {
	Products   int
	People     int
	Users      int
	Movements  int
	LowStock   int
	OutOfStock int
}

// DashboardRepository define el puerto de consultas agregadas del dashboard.
type DashboardRepository interface {
	Counters() (*DashboardCounters, error)
}
