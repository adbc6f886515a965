package report

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/ivo0509/Glitchy-Game-Emporium/models"
)

// ExportCatalog writes the full game catalog as an xlsx workbook.
func ExportCatalog(db *gorm.DB, w io.Writer) error {
	var games []models.Game
	if err := db.Order("created_at").Find(&games).Error; err != nil {
		return fmt.Errorf("fetch games: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"ID", "Name", "Price", "SellerID", "Stock", "CreatedAt"} {
		headerRow.AddCell().SetValue(h)
	}

	for _, g := range games {
		row := sheet.AddRow()
		row.AddCell().SetValue(g.ID)
		row.AddCell().SetValue(g.Name)
		row.AddCell().SetValue(g.Price)
		row.AddCell().SetValue(g.SellerID)
		row.AddCell().SetValue(g.Stock)
		row.AddCell().SetValue(g.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}

// ExportSalesHistory writes one seller's sales-history points as an xlsx
// workbook, oldest first.
func ExportSalesHistory(db *gorm.DB, sellerID string, w io.Writer) error {
	var points []models.SalesPoint
	if err := db.Where("seller_id = ?", sellerID).Order("date").Find(&points).Error; err != nil {
		return fmt.Errorf("fetch sales history: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Sales")
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range []string{"Date", "Amount"} {
		headerRow.AddCell().SetValue(h)
	}

	var total float64
	for _, p := range points {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.Date.Format("2006-01-02"))
		row.AddCell().SetValue(p.Amount)
		total += p.Amount
	}

	totalRow := sheet.AddRow()
	totalRow.AddCell().SetValue("Total")
	totalRow.AddCell().SetValue(total)

	return file.Write(w)
}
