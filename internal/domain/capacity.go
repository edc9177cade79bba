package domain

// EffectiveCapacity определяет предельную вместимость любого слота пакета.
//
// Для приватных трансферов с назначенным транспортом вместимость равна числу
// юнитов этого транспорта в реестре. Во всех остальных случаях — maximumPerson
// пакета, а если он не задан, DefaultMaxPerson.
//
// Ненайденный транспорт или пакет без maximumPerson НЕ являются ошибкой:
// расчёт вместимости молча деградирует к дефолту, чтобы неполные данные
// каталога не роняли выдачу слотов. Вызывающая сторона логирует деградацию
func EffectiveCapacity(pkg *Package, vehicles VehicleRegistry) int {
	if pkg == nil {
		return DefaultMaxPerson
	}

	if pkg.IsPrivateTransfer() && pkg.VehicleName != "" {
		if units, ok := vehicles.Units(pkg.VehicleName); ok {
			return units
		}
	}

	if pkg.MaximumPerson != nil && *pkg.MaximumPerson > 0 {
		return *pkg.MaximumPerson
	}

	return DefaultMaxPerson
}
