package models

import "time"

// Run records one completed enrichment batch in the run ledger
type Run struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InputFile    string    `gorm:"not null" json:"input_file"`
	OutputFile   string    `gorm:"not null" json:"output_file"`
	TotalRows    int       `gorm:"not null" json:"total_rows"`
	EnrichedRows int       `gorm:"not null" json:"enriched_rows"`
	SkippedRows  int       `gorm:"not null" json:"skipped_rows"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
}

// TableName specifies the table name for the Run model
func (Run) TableName() string {
	return "runs"
}
