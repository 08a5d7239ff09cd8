package web

import "context"

type ctxKey int

const (
	confirmedKey ctxKey = iota
	alertKey
)

type alertBox struct {
	msg string
}

// Prompter answers the view's prompts from the current request:
// confirmations come from the form field set by the browser's confirm(),
// alerts are collected and rendered into the response page.
type Prompter struct{}

func withConfirmed(ctx context.Context, yes bool) context.Context {
	return context.WithValue(ctx, confirmedKey, yes)
}

func withAlertBox(ctx context.Context) (context.Context, *alertBox) {
	box := &alertBox{}
	return context.WithValue(ctx, alertKey, box), box
}

func (Prompter) Confirm(ctx context.Context, _ string) bool {
	yes, _ := ctx.Value(confirmedKey).(bool)
	return yes
}

func (Prompter) Alert(ctx context.Context, msg string) {
	if box, ok := ctx.Value(alertKey).(*alertBox); ok {
		box.msg = msg
	}
}
