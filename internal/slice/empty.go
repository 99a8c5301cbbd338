// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slice

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// writeEmptyDocument writes a PDF whose page tree has no kids. Object and
// xref streams are disabled so the page tree stays readable as plain text.
func writeEmptyDocument(w io.Writer) error {
	conf := model.NewDefaultConfiguration()
	conf.WriteObjectStream = false
	conf.WriteXRefStream = false

	ctx, err := pdfcpu.CreateContextWithXRefTable(conf, types.PaperSize["A4"])
	if err != nil {
		return err
	}
	return api.WriteContext(ctx, w)
}
