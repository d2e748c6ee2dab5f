package format

import "strings"

const defaultStatus = "default"

var statusColors = map[string]string{
	// General
	"active":    "bg-green-100 text-green-800",
	"inactive":  "bg-gray-100 text-gray-800",
	"pending":   "bg-yellow-100 text-yellow-800",
	"completed": "bg-blue-100 text-blue-800",
	"cancelled": "bg-red-100 text-red-800",

	// Transfers
	"negotiating": "bg-orange-100 text-orange-800",
	"confirmed":   "bg-green-100 text-green-800",

	// Tickets
	"valid":   "bg-green-100 text-green-800",
	"used":    "bg-gray-100 text-gray-800",
	"expired": "bg-red-100 text-red-800",

	// Incidents
	"open":          "bg-red-100 text-red-800",
	"investigating": "bg-yellow-100 text-yellow-800",
	"resolved":      "bg-green-100 text-green-800",

	defaultStatus: "bg-gray-100 text-gray-800",
}

var severityColors = map[string]string{
	"low":      "bg-blue-100 text-blue-800",
	"medium":   "bg-yellow-100 text-yellow-800",
	"high":     "bg-orange-100 text-orange-800",
	"critical": "bg-red-100 text-red-800",
}

// StatusColor maps a record status to its badge classes. Lookup is
// case-insensitive; unknown statuses get the default badge.
func StatusColor(status string) string {
	if c, ok := statusColors[strings.ToLower(status)]; ok {
		return c
	}
	return statusColors[defaultStatus]
}

// SeverityColor maps a severity to its badge classes, defaulting to medium.
func SeverityColor(severity string) string {
	if c, ok := severityColors[strings.ToLower(severity)]; ok {
		return c
	}
	return severityColors["medium"]
}
