package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/storage-ops/ordertool/models"
)

func TestGenerateComments_Flags(t *testing.T) {
	api := NewMockOrderAPI()
	row := map[string]string{"Cancelled": "1", "Deleted": "1"}

	comments := GenerateComments(api, 95003, row, zap.NewNop())
	assert.Equal(t, "Order was canceled. Order was deleted.", comments)
}

func TestGenerateComments_ProxyContact(t *testing.T) {
	api := NewMockOrderAPI()
	row := map[string]string{
		"DropoffPersonName":  "Alex Kim",
		"DropoffPersonPhone": "5559876543",
	}

	comments := GenerateComments(api, 95003, row, zap.NewNop())
	assert.Equal(t, "Call proxy Alex Kim at (555) 987-6543", comments)
}

func TestGenerateComments_ProxyRequiresBothFields(t *testing.T) {
	api := NewMockOrderAPI()

	comments := GenerateComments(api, 95003, map[string]string{"DropoffPersonName": "Alex Kim"}, zap.NewNop())
	assert.Equal(t, "", comments)

	comments = GenerateComments(api, 95003, map[string]string{"DropoffPersonPhone": "5559876543"}, zap.NewNop())
	assert.Equal(t, "", comments)
}

func TestGenerateComments_PendingBalance(t *testing.T) {
	api := NewMockOrderAPI()

	comments := GenerateComments(api, 95003, map[string]string{"Balance": "150"}, zap.NewNop())
	assert.Equal(t, "Call customer to pay pending balance.", comments)

	// Zero balance means no pending balance
	comments = GenerateComments(api, 95003, map[string]string{"Balance": "0"}, zap.NewNop())
	assert.Equal(t, "", comments)
}

func TestGenerateComments_AppendsInternalNotes(t *testing.T) {
	api := NewMockOrderAPI()
	api.Notes[95003] = []models.InternalNote{
		{Comment: "Call before delivery"},
		{Comment: "Old gate code", Deleted: true},
	}

	comments := GenerateComments(api, 95003, map[string]string{"Cancelled": "1"}, zap.NewNop())
	assert.Equal(t, "Order was canceled. Call before delivery. DELETED Old gate code.", comments)
}

func TestGenerateComments_NotesFailureIsTolerated(t *testing.T) {
	api := NewMockOrderAPI()
	api.NotesErr = fmt.Errorf("upstream unavailable")

	core, logs := observer.New(zap.WarnLevel)
	comments := GenerateComments(api, 95003, map[string]string{"Cancelled": "1"}, zap.New(core))

	// Whatever was assembled so far is still returned
	assert.Equal(t, "Order was canceled.", comments)
	assert.Equal(t, 1, logs.FilterMessage("Failed to fetch internal notes").Len())
}
