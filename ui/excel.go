package ui

import (
	"github.com/xuri/excelize/v2"

	"netcompare/domain/network"
)

var comparisonHeaders = []string{
	"Network", "Users", "Overall", "Customer Service", "Communication",
	"Pricing", "Top Strength", "Top Weakness", "Top Desire", "Top Choice Factor",
}

// buildComparisonWorkbook renders the per-network comparison table as
// an XLSX workbook, one row per network in presentation order.
func buildComparisonWorkbook(profiles []network.Profile) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Comparison"

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range comparisonHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, p := range profiles {
		row := []interface{}{
			p.Network.String(), p.Users,
			p.Overall.String(), p.Service.String(),
			p.Communication.String(), p.Pricing.String(),
			p.TopStrength, p.TopWeakness, p.TopDesire, p.TopChoiceFactor,
		}
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
