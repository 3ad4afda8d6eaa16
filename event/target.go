package event

// TargetKind selects which class of recipients an event operation applies to.
type TargetKind string

const (
	KindAny           TargetKind = "Any"
	KindAnyLabel      TargetKind = "AnyLabel"
	KindWindow        TargetKind = "Window"
	KindWebview       TargetKind = "Webview"
	KindWebviewWindow TargetKind = "WebviewWindow"
)

// Target identifies which window/webview (or any/all) an event applies to.
type Target struct {
	Kind  TargetKind `json:"kind"`
	Label string     `json:"label,omitempty"`
}

// TargetAny matches events from every source.
func TargetAny() Target {
	return Target{Kind: KindAny}
}

// TargetAnyLabel matches events from any source with the given label.
func TargetAnyLabel(label string) Target {
	return Target{Kind: KindAnyLabel, Label: label}
}

// TargetWindow scopes to one window by label.
func TargetWindow(label string) Target {
	return Target{Kind: KindWindow, Label: label}
}

// TargetWebview scopes to one webview by label.
func TargetWebview(label string) Target {
	return Target{Kind: KindWebview, Label: label}
}

// TargetWebviewWindow scopes to one webview window by label.
func TargetWebviewWindow(label string) Target {
	return Target{Kind: KindWebviewWindow, Label: label}
}
