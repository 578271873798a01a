package request

import "github.com/eduardopaniago/GestaoFrota/internal/domain/entities"

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

func (r CategoryRequest) TransactionType() entities.TransactionType {
	return entities.TransactionType(r.Type)
}

type CargoTypeRequest struct {
	Name string `json:"name" binding:"required"`
	Unit string `json:"unit" binding:"required"`
}

func (r CargoTypeRequest) MeasureUnit() entities.MeasureUnit {
	return entities.MeasureUnit(r.Unit)
}

type TruckRequest struct {
	Plate string `json:"plate" binding:"required"`
	Model string `json:"model" binding:"required"`
}
