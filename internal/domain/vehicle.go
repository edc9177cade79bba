package domain

// Vehicle represents a vehicle entry from the external registry.
// Name is the unique join key referenced by private-transfer packages
type Vehicle struct {
	Name  string
	Units int
}

// VehicleRegistry lookup map from vehicle name to unit capacity
type VehicleRegistry map[string]int

// NewVehicleRegistry строит реестр из списка; записи с некорректным
// количеством юнитов отбрасываются, чтобы не отравлять расчёт вместимости
func NewVehicleRegistry(vehicles []Vehicle) VehicleRegistry {
	registry := make(VehicleRegistry, len(vehicles))
	for _, v := range vehicles {
		if v.Name == "" || v.Units <= 0 {
			continue
		}
		registry[v.Name] = v.Units
	}
	return registry
}

// Units возвращает количество юнитов для имени транспорта
func (r VehicleRegistry) Units(name string) (int, bool) {
	units, ok := r[name]
	return units, ok
}
