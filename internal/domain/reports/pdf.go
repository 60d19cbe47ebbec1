package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WorkforcePDF renders the HR workforce report: headline numbers, the
// per-department table, and the performance distribution.
func (s *Service) WorkforcePDF(w io.Writer, requestedBy string) error {
	emp, ok := s.store.EmployeeByID(requestedBy)
	if !ok {
		return ErrUnknownEmployee
	}
	report := s.HRDashboard(emp)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Workforce Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", s.now().Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Requested by: %s (%s)", emp.Name, emp.Position))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Workforce size: %d", report.WorkforceSize))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average performance: %.1f%%", report.AvgPerformance))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("High performers (>=85%%): %d", report.HighPerformers))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pending HR actions: %d", report.PendingActions))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Departments")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, dept := range report.Departments {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d employees, avg %.1f%%", dept.Name, dept.Count, dept.AvgPerformance))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Performance distribution")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 11)
	for _, bucket := range report.Buckets {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", bucket.Range, bucket.Count))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}
