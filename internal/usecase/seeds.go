package usecase

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

const DefaultCompanyName = "Minha Transportadora"

// Seed data matches what a fresh install of the legacy app created, so a
// first run looks familiar to the operators migrating from it.
func seedCategories() []entities.Category {
	return []entities.Category{
		{ID: "1", Name: "Fretes", Type: entities.TransactionTypeRevenue},
		{ID: "2", Name: "Seguro", Type: entities.TransactionTypeFixedCost},
		{ID: "3", Name: "Salários", Type: entities.TransactionTypeFixedCost},
		{ID: "4", Name: "Combustível", Type: entities.TransactionTypeVariableExpense},
		{ID: "5", Name: "Manutenção", Type: entities.TransactionTypeVariableExpense},
		{ID: "6", Name: "Pedágio", Type: entities.TransactionTypeVariableExpense},
	}
}

func seedCargoTypes() []entities.CargoTypeCategory {
	return []entities.CargoTypeCategory{
		{ID: "c1", Name: "Aterro", Unit: entities.MeasureUnitVolume},
		{ID: "c2", Name: "Brita 0", Unit: entities.MeasureUnitWeight},
		{ID: "c3", Name: "Brita 1", Unit: entities.MeasureUnitWeight},
		{ID: "c4", Name: "Areia", Unit: entities.MeasureUnitVolume},
		{ID: "c5", Name: "Massa Asfáltica", Unit: entities.MeasureUnitWeight},
	}
}

func seedTrucks() []entities.Truck {
	return []entities.Truck{
		{ID: "t1", Plate: "ABC-1234", Model: "Volvo FH 540"},
		{ID: "t2", Plate: "XYZ-9999", Model: "Scania R 450"},
	}
}
