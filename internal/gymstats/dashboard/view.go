package dashboard

// View is what the dashboard currently shows. Each variant carries exactly the
// data it needs, so there is no "editing" without a routine.
type View interface {
	isView()
	Name() string
}

type Browsing struct{}

func (Browsing) isView() {}

func (Browsing) Name() string {
	return "browsing"
}

type Creating struct{}

func (Creating) isView() {}

func (Creating) Name() string {
	return "creating"
}

type Editing struct {
	RoutineID string
}

func (Editing) isView() {}

func (Editing) Name() string {
	return "editing"
}

type InSession struct {
	RoutineID string
	SessionID string
}

func (InSession) isView() {}

func (InSession) Name() string {
	return "in_session"
}
