package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"ponto-backend/internal/model"
	"ponto-backend/internal/repository"
	"ponto-backend/internal/service"
)

type ReportHandler struct {
	pontoRepo repository.PontoRepository
}

func NewReportHandler(pontoRepo repository.PontoRepository) *ReportHandler {
	return &ReportHandler{pontoRepo: pontoRepo}
}

// ExportarMensal gera a planilha de ponto do mês (uma linha por registro,
// com horas trabalhadas calculadas) para download.
func (h *ReportHandler) ExportarMensal(c *fiber.Ctx) error {
	mes := c.Query("mes")
	ano := c.Query("ano")
	if mes == "" || ano == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetros mes e ano são obrigatórios"})
	}
	if len(mes) == 1 {
		mes = "0" + mes
	}

	pontos, err := h.pontoRepo.GetByMonth(mes, ano)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao carregar registros do mês"})
	}
	if len(pontos) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Nenhum registro de ponto no mês informado"})
	}

	buf, err := planilhaMensal(mes, ano, pontos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao gerar planilha"})
	}

	filename := fmt.Sprintf("ponto-%s-%s.xlsx", ano, mes)
	c.Set("Content-Description", "File Transfer")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf)
}

func planilhaMensal(mes, ano string, pontos []model.Ponto) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Ponto"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Registros de Ponto — %s/%s", mes, ano))

	cabecalhos := []string{"Colaborador", "Data", "Turno", "Entrada", "Saída", "Horas Trabalhadas", "Status", "Observações"}
	for i, titulo := range cabecalhos {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, titulo)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, p := range pontos {
		linha := i + 3
		turno := "-"
		if p.Shift != nil {
			turno = p.Shift.Nome
		}
		obs := ""
		if p.Observacoes != nil {
			obs = *p.Observacoes
		}

		valores := []interface{}{
			p.User.Nome,
			p.Data,
			turno,
			service.FormatarHora(p.Entrada),
			service.FormatarHora(p.Saida),
			service.CalcularHorasTrabalhadas(p.Entrada, p.Saida),
			string(p.Status),
			obs,
		}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, linha)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "H", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
