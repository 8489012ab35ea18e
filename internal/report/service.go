package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"homeo-advisor/internal/consultation"
)

type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

// Service renders consultation summaries as PDF and delivers them to a
// practitioner chat.
type Service struct {
	tgClient           TelegramClient
	practitionerChatID int64
}

func NewService(tg TelegramClient, practitionerChatID int64) *Service {
	return &Service{
		tgClient:           tg,
		practitionerChatID: practitionerChatID,
	}
}

// Common font locations, covering Alpine and Debian images.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// SendPractitionerReport renders rec as a one-page PDF and sends it to the
// configured chat.
func (s *Service) SendPractitionerReport(ctx context.Context, rec consultation.Record) error {
	if s.practitionerChatID == 0 {
		return fmt.Errorf("practitioner chat is not configured")
	}

	data, err := renderPDF(rec)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("consultation_%s.pdf", rec.ID.String())
	if err := s.tgClient.SendDocument(s.practitionerChatID, data, fileName); err != nil {
		return fmt.Errorf("failed to deliver report: %w", err)
	}
	log.Printf("report: sent consultation summary %s", rec.ID)
	return nil
}

func renderPDF(rec consultation.Record) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load report font (is ttf-dejavu installed?): %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Homeopathic Consultation Summary")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", rec.CreatedAt.Format(time.DateTime)))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Consultation ID: %s", rec.ID))
	pdf.Br(15)
	categories := "-"
	if len(rec.Result.Categories) > 0 {
		categories = strings.Join(rec.Result.Categories, ", ")
	}
	pdf.Cell(nil, fmt.Sprintf("Categories: %s", categories))
	pdf.Br(25)

	if err := writeSection(&pdf, "Assessment:", []string{rec.Result.Diagnosis}); err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(rec.Result.Recommendations))
	for _, r := range rec.Result.Recommendations {
		lines = append(lines, fmt.Sprintf("- %s, %s, %s (%s)", r.Remedy, r.Dosage, r.Duration, r.Description))
	}
	if len(lines) == 0 {
		lines = []string{"- No remedies recommended."}
	}
	if err := writeSection(&pdf, "Recommended remedies:", lines); err != nil {
		return nil, err
	}

	if err := writeSection(&pdf, "Follow-up:", []string{rec.Result.FollowUp}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gopdf.GoPdf, title string, lines []string) error {
	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return err
	}
	pdf.Cell(nil, title)
	pdf.Br(15)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return err
	}
	for _, line := range lines {
		wrapped, _ := pdf.SplitText(line, 500)
		for _, l := range wrapped {
			pdf.Cell(nil, l)
			pdf.Br(12)
		}
		pdf.Br(3)
	}
	pdf.Br(12)
	return nil
}
