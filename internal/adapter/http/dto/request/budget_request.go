package request

type BudgetRequestPayload struct {
	Title       string `json:"title" binding:"required"`
	ProductName string `json:"productName" binding:"required"`
	Description string `json:"description"`
}

type BudgetOptionPayload struct {
	Supplier string  `json:"supplier" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Details  string  `json:"details"`
}
