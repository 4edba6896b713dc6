package parcel

import "strings"

func isValidTrackingNumber(trackingNumber string) bool {
	return strings.TrimSpace(trackingNumber) != ""
}

func isValidRecipientName(name string) bool {
	return strings.TrimSpace(name) != ""
}
