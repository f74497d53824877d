// Package notifier provides the side channel that announces newly stored
// articles. It includes a Slack Incoming Webhook implementation and a no-op
// implementation for when notifications are disabled. Notification failures
// never affect the ingestion run.
package notifier
