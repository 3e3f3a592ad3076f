package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/client-desk/internal/domain"
)

// ExportInput contains the parameters for exporting the store.
type ExportInput struct{}

// ExportOutput contains a copy of every collection.
type ExportOutput struct {
	Snapshot *domain.Snapshot
}

// Export is the use case for dumping the whole store.
type Export struct {
	exporter domain.Exporter
}

// NewExport creates a new Export use case.
func NewExport(exporter domain.Exporter) *Export {
	return &Export{exporter: exporter}
}

// Execute reads every collection in one consistent snapshot.
func (uc *Export) Execute(_ context.Context, _ ExportInput) (*ExportOutput, error) {
	snap, err := uc.exporter.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return &ExportOutput{Snapshot: snap}, nil
}
