package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconConfig  = "\ue615" // config
	IconFolder  = "\uf07b" // folder
	IconDesktop = "\uf108" // desktop

	// UI
	IconCursor   = "\uf054" // chevron-right
	IconExpand   = "\uf065" // expand
	IconCollapse = "\uf066" // compress

	// Layouts
	IconLayout   = "\uf009" // th-large
	IconWindow   = "\uf2d2" // window
	IconFloating = "\uf24d" // clone
	IconSplit    = "\uf0db" // columns
	IconTree     = "\uf1bb" // tree
	IconClock    = "\uf017" // clock
	IconRestore  = "\uf0e2" // rotate-left
)
