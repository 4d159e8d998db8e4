// Package notifier delivers best-effort notifications. A Notifier never reports failure to its caller:
// delivery errors are logged and dropped.
package notifier

type Notifier interface {
	Notify(title, message string)
}

type Notifiers []Notifier

func (n Notifiers) Notify(title, message string) {
	for _, l := range n {
		l.Notify(title, message)
	}
}
