package nudge

type mockNotifier struct {
	called bool
	habits []string
	err    error
}

func (m *mockNotifier) SendReminder(habits []string) error {
	m.called = true
	m.habits = habits
	return m.err
}
