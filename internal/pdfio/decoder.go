package pdfio

import (
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/foliogen/foliogen/internal/extract"
	appErr "github.com/foliogen/foliogen/internal/pkg/errors"
)

// Decode reads the text layer of a PDF into per-row fragments, preserving
// page grouping and reading order. The pdf library panics on some malformed
// inputs, so decoding is fenced with recover and reported as a corrupt file.
func Decode(ctx context.Context, r io.ReaderAt, size int64) (pages []extract.Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logutil.GetLogger(ctx).Warn("pdf decode panic", zap.Any("cause", rec))
			pages = nil
			err = fmt.Errorf("%w: %v", appErr.ErrCorruptPDF, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErr.ErrCorruptPDF, err)
	}

	total := reader.NumPage()
	pages = make([]extract.Page, 0, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			logutil.GetLogger(ctx).Warn("skip unreadable pdf page",
				zap.Int("page", i), zap.Error(err))
			continue
		}
		var frags []extract.Fragment
		for _, row := range rows {
			var text string
			for _, t := range row.Content {
				text += t.S
			}
			if text == "" {
				continue
			}
			frags = append(frags, extract.Fragment{Text: text})
		}
		pages = append(pages, extract.Page{Fragments: frags})
	}
	return pages, nil
}
