// internal/sms/messages.go
package sms

import (
	"fmt"
	"strings"
	"time"

	"tradie-receptionist/internal/model"
)

// JobLeadBody formats the SMS a tradie receives for a real customer enquiry.
func JobLeadBody(report model.CallReport, now time.Time) string {
	header := "📋 New Job Lead"
	switch report.Urgency {
	case model.UrgencyEmergency:
		header = "🚨 EMERGENCY"
	case model.UrgencySoon:
		header = "⚡ URGENT-ISH"
	}

	lines := []string{
		header,
		"━━━━━━━━━━━━━━━",
		"👤 " + orDefault(report.CallerName, "Unknown"),
		"📞 " + orDefault(report.CallerPhone, "No number"),
		"📍 " + orDefault(report.Suburb, "Not provided"),
		"",
		"🔧 " + orDefault(report.JobDescription, "No details"),
		"",
		"⏰ Timing: " + orDefault(report.PreferredTiming, "Flexible"),
	}

	if report.Notes != "" {
		lines = append(lines, "📝 "+report.Notes)
	}

	lines = append(lines,
		"",
		"Received: "+now.Format("3:04 PM, Mon 2 Jan"),
		"",
		"Reply CALL to get their number sent back.",
	)

	return strings.Join(lines, "\n")
}

// EmergencyAlertBody formats the high-priority variant.
func EmergencyAlertBody(report model.CallReport) string {
	return strings.Join([]string{
		"🚨🚨 EMERGENCY CALL 🚨🚨",
		"",
		orDefault(report.CallerName, "Unknown") + " — " + orDefault(report.CallerPhone, "No number"),
		"📍 " + orDefault(report.Suburb, "Unknown location"),
		"",
		orDefault(report.JobDescription, "No details"),
		"",
		"CALL THEM ASAP",
	}, "\n")
}

// CallSummaryBody formats the fallback notification sent when a call ends
// without a structured report from the agent.
func CallSummaryBody(summary string, now time.Time) string {
	if summary == "" {
		summary = "No summary available."
	}
	return strings.Join([]string{
		"📋 Call finished",
		"━━━━━━━━━━━━━━━",
		summary,
		"",
		"Received: " + now.Format("3:04 PM, Mon 2 Jan"),
	}, "\n")
}

// SpamReportBody formats the daily spam summary.
func SpamReportBody(count int) string {
	return fmt.Sprintf(
		"🛡️ Daily Spam Report\n%d spam/sales calls blocked today. Your AI receptionist handled them all. 👍",
		count,
	)
}

// LastCallerBody formats the reply to the CALL command.
func LastCallerBody(name, phone string) string {
	return fmt.Sprintf("📞 Last caller: %s\n%s", name, phone)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
