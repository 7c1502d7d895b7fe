package ingest

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Extractor pulls plain text out of an image. Implementations are
// replaceable collaborators: any failure is surfaced to the caller as a
// client-correctable error.
type Extractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

var _ Extractor = (*TesseractCLI)(nil)

// TesseractCLI shells out to the tesseract binary for OCR. Keeping the
// boundary at the process level means no cgo and a trivially swappable
// engine.
type TesseractCLI struct {
	binary string
}

func NewTesseractCLI() *TesseractCLI {
	return &TesseractCLI{binary: "tesseract"}
}

func (t *TesseractCLI) ExtractText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("image file is empty")
	}

	cmd := exec.CommandContext(ctx, t.binary, "stdin", "stdout", "-l", "eng")
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return "", fmt.Errorf("failed to process image with OCR: %s: %w", detail, err)
		}
		return "", fmt.Errorf("failed to process image with OCR: %w", err)
	}

	return stdout.String(), nil
}
