package shared

// Task type names routed through the asynq worker.
const (
	TypeNotifyLateLoans = "loan:notify_late"
)

// Queue names. Late-loan notification runs on its own queue so firings
// are processed one at a time.
const (
	QueueDefault      = "default"
	QueueNotification = "notification"
)
