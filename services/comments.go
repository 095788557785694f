package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/storage-ops/ordertool/utils"
)

// GenerateComments composes the human-readable annotation for an order from
// its row flags, proxy contact, pending balance and internal notes, in that
// order. A failed notes fetch is logged and tolerated; whatever was
// assembled so far is still returned.
func GenerateComments(api OrderAPI, orderID int, row map[string]string, logger *zap.Logger) string {
	var comments []string

	if row["Cancelled"] == "1" {
		comments = append(comments, "Order was canceled.")
	}
	if row["Deleted"] == "1" {
		comments = append(comments, "Order was deleted.")
	}

	proxyName := row["DropoffPersonName"]
	proxyPhone := row["DropoffPersonPhone"]
	if proxyName != "" && proxyPhone != "" {
		comments = append(comments, "Call proxy "+proxyName+" at "+utils.ParsePhone(proxyPhone))
	}

	if balance, ok := utils.ParseInt(row["Balance"]); ok && balance > 0 {
		comments = append(comments, "Call customer to pay pending balance.")
	}

	notes, err := api.FetchInternalNotes(orderID)
	if err != nil {
		logger.Warn("Failed to fetch internal notes",
			zap.Int("order_id", orderID),
			zap.Error(err))
	}
	for _, note := range notes {
		comments = append(comments, note.Render())
	}

	return strings.Join(comments, " ")
}
