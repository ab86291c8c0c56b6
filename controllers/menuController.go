package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"github.com/ken-eddy/bakeryApp/models"
)

// BakeryMenu renders a bakery's goods as a PDF price list, most expensive first.
func (ctrl *Controller) BakeryMenu(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		ctrl.fail(c, http.StatusNotFound, bakeryNotFound(c.Param("id")))
		return
	}

	var bakery models.Bakery
	if err := ctrl.DB.First(&bakery, id).Error; err != nil {
		ctrl.handleError(c, err, bakeryNotFound(id))
		return
	}

	goods := []models.BakedGood{}
	if err := ctrl.DB.Where("bakery_id = ?", bakery.ID).
		Order("price desc").Order("id").
		Find(&goods).Error; err != nil {
		ctrl.handleError(c, err, "")
		return
	}

	pdf, err := generateMenuPDF(bakery, goods, time.Now())
	if err != nil {
		ctrl.handleError(c, err, "")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=bakery_%d_menu.pdf", bakery.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func generateMenuPDF(bakery models.Bakery, goods []models.BakedGood, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(bakery.Name+" menu", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(bakery.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, "Printed "+printedAt.Format("2006-01-02"), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 10, "Item", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 10, "Price", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	if len(goods) == 0 {
		pdf.CellFormat(170, 10, "No baked goods yet", "1", 1, "C", false, 0, "")
	}
	for _, good := range goods {
		pdf.CellFormat(130, 10, tr(good.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 10, good.Price.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render menu: %w", err)
	}
	return buf.Bytes(), nil
}
