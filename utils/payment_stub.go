package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewPaymentRef generates a mock gateway transaction reference. There is no
// real processor behind it.
func NewPaymentRef() string {
	return "PAY-" + strings.ToUpper(uuid.NewString()[:8])
}
