package models

import (
	"fmt"
	"strings"

	"github.com/storage-ops/ordertool/utils"
)

// Item represents one line item on an order as returned by the order API.
// The API may return several lines with the same title; those are aggregated
// before display.
type Item struct {
	ItemTitle string `json:"ItemTitle"`
	Quantity  int    `json:"Quantity"`
}

// DropoffInfo represents the storage-unit assignment for an order
type DropoffInfo struct {
	StorageUnitName string `json:"StorageUnitName"`
	Quadrant        string `json:"Quadrant"`
}

// Label returns the storage unit display label, e.g. "A1 NE"
func (d DropoffInfo) Label() string {
	return strings.TrimSpace(d.StorageUnitName + " " + d.Quadrant)
}

// OrderImage is one image descriptor returned by the order API.
// ImagePath is the server-side path the binary can be downloaded from.
type OrderImage struct {
	ImagePath string `json:"ImagePath"`
}

// InternalNote represents one internal note attached to an order
type InternalNote struct {
	Comment       string `json:"Comment"`
	CreatedByName string `json:"CreatedByName"`
	CreatedDate   string `json:"CreatedDate"`
	Deleted       bool   `json:"Deleted"`
}

// Render formats the note as a single sentence. Deleted notes carry a
// leading "DELETED " marker, and the sentence always ends in a period.
func (n InternalNote) Render() string {
	sentence := strings.TrimSpace(n.Comment)

	if n.CreatedByName != "" {
		if created, ok := utils.ParseDate(n.CreatedDate); ok {
			sentence = fmt.Sprintf("%s (%s, %s)", sentence, n.CreatedByName, created.Format("2006-01-02"))
		} else {
			sentence = fmt.Sprintf("%s (%s)", sentence, n.CreatedByName)
		}
	}

	if n.Deleted {
		sentence = strings.TrimSpace("DELETED " + sentence)
	}

	if !strings.HasSuffix(sentence, ".") && !strings.HasSuffix(sentence, "!") && !strings.HasSuffix(sentence, "?") {
		sentence += "."
	}

	return sentence
}
