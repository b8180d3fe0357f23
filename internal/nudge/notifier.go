package nudge

type Notifier interface {
	SendReminder(habits []string) error
}
