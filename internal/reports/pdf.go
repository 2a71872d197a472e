package reports

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// pageCount validates that data is a readable PDF and returns its page
// count. Anything pdfcpu cannot parse is rejected as a non-PDF upload.
func pageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotPDF, err)
	}

	return count, nil
}
