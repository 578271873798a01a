package entities

// TransactionType partitions every ledger movement for the DRE
// (demonstrativo de resultado do exercício).
type TransactionType string

const (
	TransactionTypeRevenue         TransactionType = "REVENUE"
	TransactionTypeFixedCost       TransactionType = "FIXED_COST"
	TransactionTypeVariableExpense TransactionType = "VARIABLE_EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeRevenue, TransactionTypeFixedCost, TransactionTypeVariableExpense:
		return true
	}
	return false
}

// Category classifies transactions. Categories referenced by any
// transaction cannot be deleted.
type Category struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type TransactionType `json:"type"`
}
