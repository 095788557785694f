package models

import "strconv"

// EnrichedRow is the fixed output schema for one enriched order. Rows are
// built fresh per input row; nothing carries over between orders.
type EnrichedRow struct {
	ID            string
	Name          string
	Pronunciation string
	Phone         string
	Location      string
	ItemCount     string
	Items         string
	TimeLoaded    string
	TimeArrived   string
	TimeDelivered string
	StorageUnit   string
	ParentPhone   string
	ImageCount    int
	Comments      string
}

// OutputColumns is the fixed column plan for the output CSV, in order.
var OutputColumns = []string{
	"ID",
	"Name",
	"Pronunciation",
	"Phone",
	"Location",
	"Ct.",
	"Items",
	"Time Loaded",
	"Time Arrived",
	"Time Delivered",
	"Storage Unit",
	"Parent Phone",
	"Image Ct.",
	"Comments",
}

// ToRecord maps the row onto the output column plan
func (r EnrichedRow) ToRecord() map[string]string {
	return map[string]string{
		"ID":             r.ID,
		"Name":           r.Name,
		"Pronunciation":  r.Pronunciation,
		"Phone":          r.Phone,
		"Location":       r.Location,
		"Ct.":            r.ItemCount,
		"Items":          r.Items,
		"Time Loaded":    r.TimeLoaded,
		"Time Arrived":   r.TimeArrived,
		"Time Delivered": r.TimeDelivered,
		"Storage Unit":   r.StorageUnit,
		"Parent Phone":   r.ParentPhone,
		"Image Ct.":      strconv.Itoa(r.ImageCount),
		"Comments":       r.Comments,
	}
}
