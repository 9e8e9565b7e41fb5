package usecases

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/opinacampo/pesquisa-campo-api/internal/analysis"
	"github.com/opinacampo/pesquisa-campo-api/internal/domain/entities"
)

// ExportUseCase renderiza tabelas de frequência para download.
// Consome o resultado pronto da agregação; não acessa o banco.
type ExportUseCase struct{}

// NewExportUseCase cria uma nova instância de ExportUseCase
func NewExportUseCase() *ExportUseCase {
	return &ExportUseCase{}
}

// RenderFrequencyCSV gera o CSV de uma tabela de frequência, com linha de
// total ao final
func (u *ExportUseCase) RenderFrequencyCSV(question *entities.Question, table analysis.FrequencyTable) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"pergunta", "valor", "quantidade", "percentual"}); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	for _, item := range table.Itens {
		record := []string{
			question.Texto,
			item.Valor,
			strconv.Itoa(item.Quantidade),
			strconv.FormatFloat(item.Percentual, 'f', 1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
		}
	}

	if table.TotalRespondentes > 0 {
		total := []string{
			question.Texto,
			"Total",
			strconv.Itoa(table.TotalRespondentes),
			"100.0",
		}
		if err := w.Write(total); err != nil {
			return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("erro ao gerar CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// RenderFrequencyXLSX gera a planilha de uma tabela de frequência
func (u *ExportUseCase) RenderFrequencyXLSX(question *entities.Question, table analysis.FrequencyTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Resultados"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Valor", "Quantidade", "Percentual"}
	if err := f.SetCellValue(sheet, "A1", question.Texto); err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
		}
	}

	row := 3
	for _, item := range table.Itens {
		values := []interface{}{item.Valor, item.Quantidade, item.Percentual}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
			}
		}
		row++
	}

	if table.TotalRespondentes > 0 {
		values := []interface{}{"Total", table.TotalRespondentes, 100.0}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	return buf.Bytes(), nil
}
