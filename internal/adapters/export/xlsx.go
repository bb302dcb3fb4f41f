// Package export renders admin data as spreadsheet downloads.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"ironcore/internal/domain/booking"
)

// BookingsSheet is the worksheet name in the bookings export.
const BookingsSheet = "Bookings"

// ContentTypeXLSX is the MIME type for the download.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var bookingHeaders = []string{"Booking ID", "Member", "Plan", "Amount (₹)", "Status", "Date"}

// BookingsFilename returns the attachment name for an export generated at t.
func BookingsFilename(t time.Time) string {
	return fmt.Sprintf("ironcore-bookings-%s.xlsx", t.Format("20060102-1504"))
}

// WriteBookings writes rows as an XLSX workbook to w.
// Row 1 describes the filter, row 2 holds headers, data starts on row 3 and a
// total of paid amounts follows the last row.
// PRE: rows are in display order
// POST: w receives a complete workbook; nothing is written on error
func WriteBookings(w io.Writer, rows []booking.Booking, filterLabel string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BookingsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#111111"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "#E8FF00"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	amountFmt := "#,##0.00"
	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return fmt.Errorf("amount style: %w", err)
	}
	statusStyles := make(map[string]int, len(booking.ValidStatuses))
	for status, color := range map[string]string{
		booking.StatusPaid:    "#DFF5E1",
		booking.StatusPending: "#FFF4CC",
		booking.StatusFailed:  "#FBDADA",
	} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("status style: %w", err)
		}
		statusStyles[status] = id
	}

	if err := f.SetCellValue(BookingsSheet, "A1", "IRONCORE bookings: "+filterLabel); err != nil {
		return err
	}
	for i, h := range bookingHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(BookingsSheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(BookingsSheet, "A2", "F2", headerStyle); err != nil {
		return err
	}

	var paidMinor int64
	for i, b := range rows {
		r := i + 3
		values := []any{b.ID, b.Name, b.Plan, float64(b.AmountMinor) / 100, b.Status, b.DateString()}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(BookingsSheet, cell, v); err != nil {
				return err
			}
		}
		amountCell, _ := excelize.CoordinatesToCellName(4, r)
		if err := f.SetCellStyle(BookingsSheet, amountCell, amountCell, amountStyle); err != nil {
			return err
		}
		if style, ok := statusStyles[b.Status]; ok {
			statusCell, _ := excelize.CoordinatesToCellName(5, r)
			if err := f.SetCellStyle(BookingsSheet, statusCell, statusCell, style); err != nil {
				return err
			}
		}
		if b.Status == booking.StatusPaid {
			paidMinor += b.AmountMinor
		}
	}

	totalRow := len(rows) + 3
	labelCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	totalCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	if err := f.SetCellValue(BookingsSheet, labelCell, "Paid total"); err != nil {
		return err
	}
	if err := f.SetCellValue(BookingsSheet, totalCell, float64(paidMinor)/100); err != nil {
		return err
	}
	if err := f.SetCellStyle(BookingsSheet, totalCell, totalCell, amountStyle); err != nil {
		return err
	}

	for col, width := range map[string]float64{"A": 38, "B": 24, "C": 12, "D": 14, "E": 10, "F": 12} {
		if err := f.SetColWidth(BookingsSheet, col, col, width); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
