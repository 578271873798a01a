package usecase

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eduardopaniago/GestaoFrota/internal/domain/entities"
)

// ImportResult summarizes a spreadsheet ingest. Lines that fail to parse
// are skipped and reported, never aborting the whole file.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportUseCase ingests transaction rows from CSV exports of the
// spreadsheets the business used before this system.
type ImportUseCase struct {
	store *LedgerStore
	log   zerolog.Logger
}

func NewImportUseCase(store *LedgerStore) *ImportUseCase {
	return &ImportUseCase{store: store, log: log.With().Str("component", "import").Logger()}
}

// Header synonyms accepted in the first row, lowercased. Spreadsheets from
// the field come with many spellings.
var importColumns = map[string]string{
	"data":         "date",
	"dia":          "date",
	"descricao":    "description",
	"descrição":    "description",
	"historico":    "description",
	"histórico":    "description",
	"valor":        "amount",
	"montante":     "amount",
	"categoria":    "category",
	"placa":        "plate",
	"caminhao":     "plate",
	"caminhão":     "plate",
	"tipo":         "type",
	"status":       "status",
	"situacao":     "status",
	"situação":     "status",
	"vencimento":   "dueDate",
	"cliente":      "subCategory",
	"fornecedor":   "subCategory",
	"subcategoria": "subCategory",
}

// ImportCSV reads a delimited file (comma or semicolon, sniffed from the
// header row) and books one transaction per valid row.
func (u *ImportUseCase) ImportCSV(r io.Reader) (ImportResult, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && err != io.EOF {
		return ImportResult{}, fmt.Errorf("reading import file: %w", err)
	}
	delim := ','
	if line, _, ok := strings.Cut(string(head), "\n"); ok || len(line) > 0 {
		if strings.Count(line, ";") > strings.Count(line, ",") {
			delim = ';'
		}
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading header row: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		if canonical, ok := importColumns[name]; ok {
			if _, taken := cols[canonical]; !taken {
				cols[canonical] = i
			}
		}
	}
	if _, ok := cols["amount"]; !ok {
		return ImportResult{}, fmt.Errorf("%w: no amount column recognized in header", ErrValidation)
	}

	snap := u.store.Snapshot()
	var result ImportResult
	line := 1
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		tx, skip, err := u.rowToTransaction(snap, cols, row)
		if skip {
			result.Skipped++
			continue
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if _, err := u.store.AddTransaction(tx); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}
	u.log.Info().Int("imported", result.Imported).Int("skipped", result.Skipped).Msg("csv import finished")
	return result, nil
}

func (u *ImportUseCase) rowToTransaction(snap entities.Snapshot, cols map[string]int, row []string) (entities.Transaction, bool, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	amount, err := parseDecimal(field("amount"))
	if err != nil {
		return entities.Transaction{}, false, err
	}
	if amount == 0 {
		return entities.Transaction{}, true, nil
	}

	tx := entities.Transaction{
		Amount:      amount,
		Description: field("description"),
		SubCategory: field("subCategory"),
	}

	tx.Date, err = normalizeImportDay(field("date"), formatDay(u.store.now()))
	if err != nil {
		return entities.Transaction{}, false, err
	}
	if due := field("dueDate"); due != "" {
		tx.DueDate, err = normalizeImportDay(due, "")
		if err != nil {
			return entities.Transaction{}, false, err
		}
	}

	status := strings.ToLower(field("status"))
	tx.IsPaid = !(strings.Contains(status, "pendente") || strings.Contains(status, "aberto"))

	if plate := field("plate"); plate != "" {
		if truck, ok := resolveTruckByPlate(snap.Trucks, plate); ok {
			tx.TruckID = truck.ID
		}
	}

	if cat, ok := resolveByName(snap.Categories, field("category"), func(c entities.Category) string { return c.Name }); ok {
		tx.CategoryID = cat.ID
		tx.Type = cat.Type
	} else {
		tx.Type = typeFromLabel(field("type"))
		fallback, ok := findCategoryForType(snap.Categories, tx.Type)
		if !ok {
			return entities.Transaction{}, false, fmt.Errorf("%w: no category for row", ErrValidation)
		}
		tx.CategoryID = fallback.ID
	}
	return tx, false, nil
}

// parseDecimal accepts both 1234.56 and the Brazilian 1.234,56 form.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	return v, nil
}

// normalizeImportDay accepts YYYY-MM-DD and DD/MM/YYYY; empty falls back.
func normalizeImportDay(s, fallback string) (string, error) {
	if s == "" {
		if fallback == "" {
			return "", fmt.Errorf("%w: date is required", ErrValidation)
		}
		return fallback, nil
	}
	if t, err := parseDay(s); err == nil {
		return formatDay(t), nil
	}
	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		day, dErr := strconv.Atoi(parts[0])
		month, mErr := strconv.Atoi(parts[1])
		year, yErr := strconv.Atoi(parts[2])
		if dErr == nil && mErr == nil && yErr == nil {
			if year < 100 {
				year += 2000
			}
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
		}
	}
	return "", fmt.Errorf("%w: invalid date %q", ErrValidation, s)
}

func typeFromLabel(label string) entities.TransactionType {
	label = strings.ToLower(label)
	switch {
	case strings.Contains(label, "receita") || strings.Contains(label, "frete"):
		return entities.TransactionTypeRevenue
	case strings.Contains(label, "fixo") || strings.Contains(label, "fixa"):
		return entities.TransactionTypeFixedCost
	}
	return entities.TransactionTypeVariableExpense
}

func findCategoryForType(categories []entities.Category, typ entities.TransactionType) (entities.Category, bool) {
	for _, cat := range categories {
		if cat.Type == typ {
			return cat, true
		}
	}
	if len(categories) > 0 {
		return categories[0], true
	}
	return entities.Category{}, false
}
